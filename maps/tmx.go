// Package maps turns Tiled maps into ordered, draw-ready layer sets and loads
// them incrementally for the loading screen.
package maps

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/lafriks/go-tiled"
)

var (
	ErrNoTileset       = errors.New("maps: tile has no tileset image")
	ErrTileOutOfBounds = errors.New("maps: tile outside tileset image")
	ErrInfiniteLayer   = errors.New("maps: layer has no fixed tile grid")
	ErrGroupedLayer    = errors.New("maps: layer is inside a group")
)

// Options controls layer processing.
type Options struct {
	// Scaling multiplies tile sizes and positions.
	Scaling float64
	// BlockingMarker is the name substring that marks wall layers.
	BlockingMarker string
}

func (o Options) scale() float64 {
	if o.Scaling <= 0 {
		return 1
	}
	return o.Scaling
}

// Map is a parsed map ready for a game stage.
type Map struct {
	Name   string
	Path   string
	Layers *LayerSet
	// Width and Height in world pixels after scaling.
	Width, Height float64
}

// Parse reads a .tmx file from fsys and processes its layers.
func Parse(fsys fs.FS, p string, opts Options, logger *log.Logger) (*Map, error) {
	tm, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("maps: load %s: %w", p, err)
	}

	base := path.Base(p)
	name := base[:len(base)-len(path.Ext(base))]
	s := opts.scale()
	return &Map{
		Name:   name,
		Path:   p,
		Layers: BuildLayers(tm, path.Dir(p), opts, logger.With("map", name)),
		Width:  float64(tm.Width*tm.TileWidth) * s,
		Height: float64(tm.Height*tm.TileHeight) * s,
	}, nil
}

// BuildLayers processes every tile layer of tm in order. dir is the directory
// of the map file, used to resolve tileset images. A layer that fails is
// logged and left out; the rest still load.
func BuildLayers(tm *tiled.Map, dir string, opts Options, logger *log.Logger) *LayerSet {
	set := NewLayerSet()
	for _, tl := range tm.Layers {
		if tl == nil {
			continue
		}
		logger.Info("loading layer", "layer", tl.Name)
		layer, err := processLayer(tm, tl, dir, opts)
		if err != nil {
			logger.Warn("can't load layer", "layer", tl.Name, "err", err)
			continue
		}
		set.Add(layer)
	}
	for _, g := range tm.Groups {
		skipGroup(g, logger)
	}
	return set
}

// skipGroup logs every tile layer under g, nested groups included.
func skipGroup(g *tiled.Group, logger *log.Logger) {
	if g == nil {
		return
	}
	for _, tl := range g.Layers {
		if tl == nil {
			continue
		}
		logger.Warn("can't load layer", "layer", tl.Name, "group", g.Name, "err", ErrGroupedLayer)
	}
	for _, sub := range g.Groups {
		skipGroup(sub, logger)
	}
}

func processLayer(tm *tiled.Map, tl *tiled.Layer, dir string, opts Options) (*Layer, error) {
	if tm.Width <= 0 || tm.Height <= 0 || len(tl.Tiles) != tm.Width*tm.Height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d map", ErrInfiniteLayer, len(tl.Tiles), tm.Width, tm.Height)
	}

	s := opts.scale()
	cellW := float64(tm.TileWidth) * s
	cellH := float64(tm.TileHeight) * s

	layer := &Layer{
		Name:     tl.Name,
		Blocking: IsBlocking(tl.Name, opts.BlockingMarker),
	}
	for i, lt := range tl.Tiles {
		if lt == nil || lt.Nil {
			continue
		}
		ts := lt.Tileset
		if ts == nil || ts.Image == nil || ts.Image.Source == "" {
			return nil, fmt.Errorf("%w: cell %d", ErrNoTileset, i)
		}

		src := ts.GetTileRect(lt.ID)
		bounds := image.Rect(0, 0, ts.Image.Width, ts.Image.Height)
		if src.Empty() || !src.In(bounds) {
			return nil, fmt.Errorf("%w: tile %d of %s at %v", ErrTileOutOfBounds, lt.ID, ts.Name, src)
		}

		col := i % tm.Width
		row := i / tm.Width
		// tmx rows run top-down; flip so row 0 is the top of the world
		layer.Tiles = append(layer.Tiles, Tile{
			Left:   float64(col) * cellW,
			Bottom: float64(tm.Height-row-1) * cellH,
			W:      float64(src.Dx()) * s,
			H:      float64(src.Dy()) * s,
			Sheet:  sheetPath(dir, ts),
			Src:    src,
			FlipH:  lt.HorizontalFlip,
			FlipV:  lt.VerticalFlip,
			FlipD:  lt.DiagonalFlip,
		})
	}
	return layer, nil
}

// sheetPath resolves a tileset image relative to the map, or to the .tsx
// file for external tilesets.
func sheetPath(dir string, ts *tiled.Tileset) string {
	img := filepath.ToSlash(ts.Image.Source)
	if ts.Source != "" {
		dir = path.Dir(path.Join(dir, filepath.ToSlash(ts.Source)))
	}
	return path.Join(dir, img)
}
