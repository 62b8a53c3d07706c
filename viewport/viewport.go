// Package viewport decides when and how far the visible window scrolls to
// keep a followed box inside configurable margins.
//
// Coordinates are world pixels with a bottom-left origin: Bottom < Top and
// the view origin is its lower-left corner.
package viewport

// Rect is an axis aligned box in world coordinates.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// FromCenter builds a Rect of the given size centred on cx, cy.
func FromCenter(cx, cy, w, h float64) Rect {
	return Rect{
		Left:   cx - w/2,
		Right:  cx + w/2,
		Bottom: cy - h/2,
		Top:    cy + h/2,
	}
}

// Origin is the lower-left corner of the visible window. It only ever holds
// whole pixels.
type Origin struct {
	Left, Bottom int
}

// Size is the visible window size in pixels.
type Size struct {
	W, H int
}

// Margins is the minimum distance kept between the followed box and each
// window edge.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Uniform returns margins of m on every side.
func Uniform(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

// Scroll shifts the origin so that box stays within the margins of a window
// of the given size. The horizontal and vertical checks are independent. When
// anything moved the result is truncated to whole pixels and changed is true;
// otherwise o is returned untouched.
func Scroll(box Rect, o Origin, screen Size, m Margins) (Origin, bool) {
	left := float64(o.Left)
	bottom := float64(o.Bottom)
	changed := false

	if lb := left + m.Left; box.Left < lb {
		left -= lb - box.Left
		changed = true
	}

	if rb := left + float64(screen.W) - m.Right; box.Right > rb {
		left += box.Right - rb
		changed = true
	}

	if tb := bottom + float64(screen.H) - m.Top; box.Top > tb {
		bottom += box.Top - tb
		changed = true
	}

	if bb := bottom + m.Bottom; box.Bottom < bb {
		bottom -= bb - box.Bottom
		changed = true
	}

	if !changed {
		return o, false
	}

	// whole pixels only, otherwise tiles shimmer at the seams
	return Origin{Left: int(left), Bottom: int(bottom)}, true
}
