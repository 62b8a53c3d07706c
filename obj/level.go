package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/maps"
)

// ImageLoader loads an image by assets-relative path.
type ImageLoader func(path string) (*ebiten.Image, error)

// Level is a map ready to draw: its layers in draw order plus the wall tiles
// the player collides with.
type Level struct {
	Name          string
	Width, Height float64

	layers []*Layer
	walls  []maps.Tile
}

// NewLevel loads the tileset images a map refers to and builds its layers.
func NewLevel(m *maps.Map, load ImageLoader) (*Level, error) {
	sheets := make(map[string]*ebiten.Image)
	for _, p := range m.Layers.Sheets() {
		img, err := load(p)
		if err != nil {
			return nil, fmt.Errorf("level %s: tileset %s: %w", m.Name, p, err)
		}
		sheets[p] = img
	}

	lvl := &Level{
		Name:   m.Name,
		Width:  m.Width,
		Height: m.Height,
		walls:  m.Layers.Walls(),
	}
	m.Layers.Each(func(ml *maps.Layer) {
		lvl.layers = append(lvl.layers, NewLayer(ml, sheets))
	})
	return lvl, nil
}

// Layers returns the layers in draw order.
func (l *Level) Layers() []*Layer {
	return l.layers
}

// Walls returns the tiles of every blocking layer.
func (l *Level) Walls() []maps.Tile {
	return l.walls
}

// Draw renders every layer back to front.
func (l *Level) Draw(screen *ebiten.Image, cam *Camera) {
	for _, ly := range l.layers {
		ly.Draw(screen, cam)
	}
}
