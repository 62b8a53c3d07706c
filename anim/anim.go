// Package anim selects walk-cycle frames from a directional spritesheet.
//
// The sheet holds FrameCount frames split into four bands of BandSize frames,
// one band per facing direction. Moving entities cycle within the band for
// their direction; idle entities hold their current frame.
package anim

const (
	// BandSize is the number of frames in one walk cycle.
	BandSize = 3
	// FrameCount is the number of frames on a directional sheet.
	FrameCount = 4 * BandSize
)

// Band is a contiguous range of BandSize frames reserved for one direction.
type Band int

const (
	BandDown Band = iota
	BandLeft
	BandRight
	BandUp
)

var bandNames = [...]string{"down", "left", "right", "up"}

func (b Band) String() string {
	if b < BandDown || b > BandUp {
		return "unknown"
	}
	return bandNames[b]
}

// Start is the first frame of the band.
func (b Band) Start() int {
	return int(b) * BandSize
}

// End is the last frame of the band.
func (b Band) End() int {
	return b.Start() + BandSize - 1
}

// Contains reports whether frame lies in the band.
func (b Band) Contains(frame int) bool {
	return frame >= b.Start() && frame <= b.End()
}

// BandOf returns the band holding frame. Frames outside the sheet report
// BandDown.
func BandOf(frame int) Band {
	if frame < 0 || frame >= FrameCount {
		return BandDown
	}
	return Band(frame / BandSize)
}

// BandFor picks the band for a velocity. Horizontal movement wins over
// vertical; anything not moving right, left or up falls back to down.
func BandFor(changeX, changeY float64) Band {
	switch {
	case changeX > 0:
		return BandRight
	case changeX < 0:
		return BandLeft
	case changeY > 0:
		return BandUp
	default:
		return BandDown
	}
}

// Advance returns the frame to show after one tick at the given velocity.
// A stationary entity keeps its frame. A moving one steps forward and wraps
// back to the start of its direction's band when it leaves it.
func Advance(frame int, changeX, changeY float64) int {
	if changeX == 0 && changeY == 0 {
		return frame
	}

	band := BandFor(changeX, changeY)
	next := frame + 1
	if !band.Contains(next) {
		next = band.Start()
	}
	return next
}

// Animator holds the frame index of one entity.
type Animator struct {
	Frame int
}

// Step advances the frame for this tick and reports whether it changed.
func (a *Animator) Step(changeX, changeY float64) bool {
	prev := a.Frame
	a.Frame = Advance(a.Frame, changeX, changeY)
	return a.Frame != prev
}

// Band returns the band of the current frame.
func (a *Animator) Band() Band {
	return BandOf(a.Frame)
}
