package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current state of the four direction keys plus the
// per-frame mouse and key edges.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// RightClicked is true on the frame the right mouse button was pressed;
	// CursorX/Y hold the cursor position in screen pixels.
	RightClicked bool
	CursorX      int
	CursorY      int

	// PausePressed is true on the frame Escape was pressed.
	PausePressed bool
	// NextMap is true on the frame Tab was pressed.
	NextMap bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and mouse.
func (i *Input) Update() {
	i.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	i.CursorX, i.CursorY = ebiten.CursorPosition()
	i.RightClicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.NextMap = inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

// Velocity converts the key flags into a per-frame velocity of the given
// speed. Opposite keys cancel; diagonals move on both axes at full speed.
func (i *Input) Velocity(speed float64) (float64, float64) {
	var dx, dy float64
	if i.Up && !i.Down {
		dy = speed
	} else if i.Down && !i.Up {
		dy = -speed
	}
	if i.Left && !i.Right {
		dx = -speed
	} else if i.Right && !i.Left {
		dx = speed
	}
	return dx, dy
}
