package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/maps"
	"github.com/milk9111/communityrpg/viewport"
)

// Layer draws one processed map layer. Tile sub-images are cut once, when
// the layer is built.
type Layer struct {
	Name     string
	Blocking bool

	tiles []maps.Tile
	imgs  []*ebiten.Image
}

// NewLayer binds a map layer to its loaded tileset images.
func NewLayer(ml *maps.Layer, sheets map[string]*ebiten.Image) *Layer {
	ly := &Layer{
		Name:     ml.Name,
		Blocking: ml.Blocking,
		tiles:    ml.Tiles,
		imgs:     make([]*ebiten.Image, len(ml.Tiles)),
	}
	for i, t := range ml.Tiles {
		sheet, ok := sheets[t.Sheet]
		if !ok || sheet == nil {
			continue
		}
		ly.imgs[i] = sheet.SubImage(t.Src.Add(sheet.Bounds().Min)).(*ebiten.Image)
	}
	return ly
}

// Len is the number of tiles on the layer.
func (ly *Layer) Len() int {
	return len(ly.tiles)
}

// Draw renders the tiles that overlap the camera view.
func (ly *Layer) Draw(screen *ebiten.Image, cam *Camera) {
	for i, t := range ly.tiles {
		img := ly.imgs[i]
		if img == nil {
			continue
		}
		r := viewport.Rect{Left: t.Left, Right: t.Right(), Bottom: t.Bottom, Top: t.Top()}
		if !cam.Visible(r) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = TileGeoM(t)
		cam.Place(&op.GeoM, t.Left, t.Top())
		screen.DrawImage(img, op)
	}
}

// TileGeoM maps a tile's source pixels onto its W x H box with the top-left
// corner at 0,0, applying the map's flips.
func TileGeoM(t maps.Tile) ebiten.GeoM {
	w, h := float64(t.Src.Dx()), float64(t.Src.Dy())
	var g ebiten.GeoM
	if t.FlipD {
		// transpose
		g.SetElement(0, 0, 0)
		g.SetElement(0, 1, 1)
		g.SetElement(1, 0, 1)
		g.SetElement(1, 1, 0)
		w, h = h, w
	}
	if t.FlipH {
		g.Scale(-1, 1)
		g.Translate(w, 0)
	}
	if t.FlipV {
		g.Scale(1, -1)
		g.Translate(0, h)
	}
	g.Scale(t.W/w, t.H/h)
	return g
}
