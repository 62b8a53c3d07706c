package maps

import (
	"image"
	"strings"
)

// Tile is one placed tile in world space. Left/Bottom is the lower-left
// corner; world y grows upwards.
type Tile struct {
	Left, Bottom float64
	W, H         float64
	// Sheet is the assets path of the tileset image and Src the tile's
	// rectangle within it.
	Sheet string
	Src   image.Rectangle
	// Flips as stored in the map. Diagonal swaps x and y and is applied
	// before the horizontal and vertical flips.
	FlipH, FlipV, FlipD bool
}

// Right edge of the tile.
func (t Tile) Right() float64 { return t.Left + t.W }

// Top edge of the tile.
func (t Tile) Top() float64 { return t.Bottom + t.H }

// Layer is a processed tile layer.
type Layer struct {
	Name     string
	Blocking bool
	Tiles    []Tile
}

// IsBlocking reports whether a layer name marks a wall layer.
func IsBlocking(name, marker string) bool {
	return marker != "" && strings.Contains(name, marker)
}

// LayerSet maps layer names to layers and remembers insertion order, which is
// the draw order (back to front).
type LayerSet struct {
	order  []string
	byName map[string]*Layer
}

func NewLayerSet() *LayerSet {
	return &LayerSet{byName: make(map[string]*Layer)}
}

// Add stores l under its name. Re-adding a name replaces the layer but keeps
// its first draw position.
func (s *LayerSet) Add(l *Layer) {
	if l == nil {
		return
	}
	if _, ok := s.byName[l.Name]; !ok {
		s.order = append(s.order, l.Name)
	}
	s.byName[l.Name] = l
}

func (s *LayerSet) Get(name string) (*Layer, bool) {
	l, ok := s.byName[name]
	return l, ok
}

// Names returns layer names in draw order.
func (s *LayerSet) Names() []string {
	return append([]string(nil), s.order...)
}

func (s *LayerSet) Len() int {
	return len(s.order)
}

// Each calls fn for every layer in draw order.
func (s *LayerSet) Each(fn func(*Layer)) {
	for _, name := range s.order {
		fn(s.byName[name])
	}
}

// Walls gathers the tiles of every blocking layer, in draw order.
func (s *LayerSet) Walls() []Tile {
	var out []Tile
	s.Each(func(l *Layer) {
		if l.Blocking {
			out = append(out, l.Tiles...)
		}
	})
	return out
}

// Sheets returns the distinct tileset images referenced by the layers.
func (s *LayerSet) Sheets() []string {
	seen := make(map[string]bool)
	var out []string
	s.Each(func(l *Layer) {
		for _, t := range l.Tiles {
			if !seen[t.Sheet] {
				seen[t.Sheet] = true
				out = append(out, t.Sheet)
			}
		}
	})
	return out
}
