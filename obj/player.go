package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/anim"
	"github.com/milk9111/communityrpg/viewport"
)

// Point is a world position.
type Point struct {
	X, Y float64
}

// Player is the walking character: a centre position, a per-frame velocity
// and a directional walk cycle over its textures.
type Player struct {
	CenterX, CenterY float64
	ChangeX, ChangeY float64
	Width, Height    float64

	// Destination is set by a right click; nothing walks to it yet.
	Destination *Point

	anim     anim.Animator
	textures []*ebiten.Image
}

// NewPlayer creates a player centred on x, y. textures are indexed by frame.
func NewPlayer(textures []*ebiten.Image, w, h, x, y float64) *Player {
	return &Player{
		CenterX:  x,
		CenterY:  y,
		Width:    w,
		Height:   h,
		textures: textures,
	}
}

// SetVelocity sets the movement for this frame.
func (p *Player) SetVelocity(dx, dy float64) {
	p.ChangeX = dx
	p.ChangeY = dy
}

// Update advances the walk cycle for the current velocity.
func (p *Player) Update() {
	p.anim.Step(p.ChangeX, p.ChangeY)
}

// Frame is the index of the texture on show.
func (p *Player) Frame() int {
	return p.anim.Frame
}

// Facing is the direction band of the texture on show.
func (p *Player) Facing() anim.Band {
	return p.anim.Band()
}

// Texture returns the texture for the current frame, or nil when the sheet
// is short.
func (p *Player) Texture() *ebiten.Image {
	if p.anim.Frame < 0 || p.anim.Frame >= len(p.textures) {
		return nil
	}
	return p.textures[p.anim.Frame]
}

// BoundingBox is the player's box in world coordinates.
func (p *Player) BoundingBox() viewport.Rect {
	return viewport.FromCenter(p.CenterX, p.CenterY, p.Width, p.Height)
}

// SetDestination records a target point for the player.
func (p *Player) SetDestination(x, y float64) {
	p.Destination = &Point{X: x, Y: y}
}

// Draw renders the current texture through the camera.
func (p *Player) Draw(screen *ebiten.Image, cam *Camera) {
	img := p.Texture()
	if img == nil {
		return
	}
	box := p.BoundingBox()
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Width/float64(b.Dx()), p.Height/float64(b.Dy()))
	cam.Place(&op.GeoM, box.Left, box.Top)
	screen.DrawImage(img, op)
}
