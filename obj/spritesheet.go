package obj

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRect returns the source rectangle of frame i on a sheet laid out
// left to right, top to bottom in columns cells per row.
func FrameRect(i, frameW, frameH, columns int) image.Rectangle {
	x := (i % columns) * frameW
	y := (i / columns) * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}

// CheckSheet reports whether a sheet of the given bounds holds count frames.
func CheckSheet(bounds image.Rectangle, frameW, frameH, columns, count int) error {
	if frameW <= 0 || frameH <= 0 || columns <= 0 || count <= 0 {
		return fmt.Errorf("spritesheet: bad layout %dx%d, %d columns, %d frames", frameW, frameH, columns, count)
	}
	last := FrameRect(count-1, frameW, frameH, columns)
	if columns*frameW > bounds.Dx() || !last.In(image.Rect(0, 0, bounds.Dx(), bounds.Dy())) {
		return fmt.Errorf("spritesheet: %dx%d sheet too small for %d frames of %dx%d in %d columns",
			bounds.Dx(), bounds.Dy(), count, frameW, frameH, columns)
	}
	return nil
}

// SliceSheet cuts count frames out of sheet.
func SliceSheet(sheet *ebiten.Image, frameW, frameH, columns, count int) ([]*ebiten.Image, error) {
	b := sheet.Bounds()
	if err := CheckSheet(b, frameW, frameH, columns, count); err != nil {
		return nil, err
	}
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		frames[i] = sheet.SubImage(FrameRect(i, frameW, frameH, columns).Add(b.Min)).(*ebiten.Image)
	}
	return frames, nil
}
