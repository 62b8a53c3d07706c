package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/viewport"
)

// Camera scrolls a fixed-size view over a y-up world so that a followed box
// stays inside the configured margins.
type Camera struct {
	screenW int
	screenH int
	margins viewport.Margins
	origin  viewport.Origin
	off     *ebiten.Image

	// view is rebuilt only when the origin moves
	view ebiten.GeoM
}

// NewCamera creates a camera with the given logical screen size and margins,
// looking at the world origin.
func NewCamera(screenW, screenH int, m viewport.Margins) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, margins: m}
	c.setOrigin(viewport.Origin{})
	return c
}

// SetMargins replaces the scroll margins. The view moves on the next Follow.
func (c *Camera) SetMargins(m viewport.Margins) {
	c.margins = m
}

func (c *Camera) Margins() viewport.Margins {
	return c.margins
}

// Size returns the logical screen size.
func (c *Camera) Size() viewport.Size {
	return viewport.Size{W: c.screenW, H: c.screenH}
}

// Origin returns the world position of the view's lower-left corner.
func (c *Camera) Origin() viewport.Origin {
	return c.origin
}

// Follow scrolls toward box and reports whether the view moved.
func (c *Camera) Follow(box viewport.Rect) bool {
	o, changed := viewport.Scroll(box, c.origin, c.Size(), c.margins)
	if changed {
		c.setOrigin(o)
	}
	return changed
}

func (c *Camera) setOrigin(o viewport.Origin) {
	c.origin = o
	c.view.Reset()
	c.view.Translate(float64(-o.Left), float64(c.screenH+o.Bottom))
}

// WorldToScreen maps a world point to screen pixels (y down).
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - float64(c.origin.Left), float64(c.screenH) - (y - float64(c.origin.Bottom))
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + float64(c.origin.Left), float64(c.screenH) - sy + float64(c.origin.Bottom)
}

// Visible reports whether a world rect overlaps the view.
func (c *Camera) Visible(r viewport.Rect) bool {
	l := float64(c.origin.Left)
	b := float64(c.origin.Bottom)
	return r.Right > l && r.Left < l+float64(c.screenW) && r.Top > b && r.Bottom < b+float64(c.screenH)
}

// Place appends the transform that puts an image's top-left corner at the
// world point (left, top).
func (c *Camera) Place(geo *ebiten.GeoM, left, top float64) {
	geo.Translate(left, -top)
	geo.Concat(c.view)
}

// Render clears an offscreen target the size of the view, lets drawWorld
// paint into it, then copies it to screen with nearest filtering.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
