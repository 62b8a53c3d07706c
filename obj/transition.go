package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type fadePhase int

const (
	fadeIdle fadePhase = iota
	fadeOut
	fadeIn
)

// Transition fades the screen to black and back again. The swap callback
// runs once, at the darkest frame.
type Transition struct {
	Duration int

	phase   fadePhase
	frames  int
	swap    func()
	overlay *ebiten.Image
}

// NewTransition creates an idle transition whose halves last duration ticks.
func NewTransition(duration int) *Transition {
	return &Transition{Duration: max(duration, 1)}
}

// Start fades out, calls swap, then fades back in. It is ignored while a
// transition is already running.
func (t *Transition) Start(swap func()) {
	if t.Active() {
		return
	}
	t.phase = fadeOut
	t.frames = 0
	t.swap = swap
}

// Reveal starts from black and fades in.
func (t *Transition) Reveal() {
	t.phase = fadeIn
	t.frames = 0
	t.swap = nil
}

func (t *Transition) Active() bool {
	return t.phase != fadeIdle
}

// Update advances the fade. It returns true while the transition is running
// so the caller can hold the world still.
func (t *Transition) Update() bool {
	if !t.Active() {
		return false
	}
	t.frames++
	if t.frames < t.Duration {
		return true
	}

	switch t.phase {
	case fadeOut:
		if t.swap != nil {
			t.swap()
			t.swap = nil
		}
		t.phase = fadeIn
		t.frames = 0
	case fadeIn:
		t.phase = fadeIdle
		t.frames = 0
	}
	return true
}

// Alpha is the overlay opacity, 0 when idle and 1 at the darkest frame.
func (t *Transition) Alpha() float64 {
	f := float64(t.frames) / float64(t.Duration)
	switch t.phase {
	case fadeOut:
		return min(f, 1)
	case fadeIn:
		return max(1-f, 0)
	default:
		return 0
	}
}

// Draw covers screen with black at the current opacity.
func (t *Transition) Draw(screen *ebiten.Image) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	if t.overlay == nil {
		t.overlay = ebiten.NewImage(1, 1)
		t.overlay.Fill(color.Black)
	}

	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(t.overlay, op)
}
