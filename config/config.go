package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/milk9111/communityrpg/viewport"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

//go:embed default.yaml
var defaultYAML []byte

// Config is the full game configuration.
type Config struct {
	Window   WindowSpec   `yaml:"window"`
	Viewport ViewportSpec `yaml:"viewport"`
	Player   PlayerSpec   `yaml:"player"`
	Tiles    TilesSpec    `yaml:"tiles"`
	Maps     MapsSpec     `yaml:"maps"`
}

type WindowSpec struct {
	Width             int    `yaml:"width"`
	Height            int    `yaml:"height"`
	Title             string `yaml:"title"`
	Resizable         bool   `yaml:"resizable"`
	Background        string `yaml:"background"`
	LoadingBackground string `yaml:"loading_background"`
}

// ViewportSpec holds the scroll margins in pixels.
type ViewportSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Margins returns the margins as the camera takes them.
func (v ViewportSpec) Margins() viewport.Margins {
	return viewport.Margins{Left: v.Left, Right: v.Right, Top: v.Top, Bottom: v.Bottom}
}

type PlayerSpec struct {
	Sheet       string  `yaml:"sheet"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Columns     int     `yaml:"columns"`
	Frames      int     `yaml:"frames"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Speed       float64 `yaml:"speed"`
}

type TilesSpec struct {
	Scaling        float64 `yaml:"scaling"`
	BlockingMarker string  `yaml:"blocking_marker"`
}

type MapsSpec struct {
	Start string   `yaml:"start"`
	Files []string `yaml:"files"`
}

// Validate checks the values the game cannot run without.
func (c *Config) Validate() error {
	var problems []string
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Viewport.Left < 0 || c.Viewport.Right < 0 || c.Viewport.Top < 0 || c.Viewport.Bottom < 0 {
		problems = append(problems, "negative viewport margin")
	}
	if c.Player.FrameWidth <= 0 || c.Player.FrameHeight <= 0 {
		problems = append(problems, fmt.Sprintf("player frame %dx%d", c.Player.FrameWidth, c.Player.FrameHeight))
	}
	if c.Player.Columns <= 0 || c.Player.Frames <= 0 {
		problems = append(problems, fmt.Sprintf("player sheet %d columns %d frames", c.Player.Columns, c.Player.Frames))
	}
	if c.Player.Speed < 0 {
		problems = append(problems, "negative player speed")
	}
	if c.Tiles.Scaling <= 0 {
		problems = append(problems, fmt.Sprintf("tile scaling %v", c.Tiles.Scaling))
	}
	if c.Tiles.BlockingMarker == "" {
		problems = append(problems, "empty blocking marker")
	}
	if len(c.Maps.Files) == 0 {
		problems = append(problems, "no maps")
	} else if c.Maps.Start != "" && c.MapIndex(c.Maps.Start) < 0 {
		problems = append(problems, fmt.Sprintf("start map %q not in maps", c.Maps.Start))
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := ParseHexColor(c.Window.LoadingBackground); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// MapName returns the name of a map file without directory or extension.
func MapName(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

// MapIndex returns the position of the named map in Files, or -1.
func (c *Config) MapIndex(name string) int {
	for i, f := range c.Maps.Files {
		if MapName(f) == name {
			return i
		}
	}
	return -1
}

// ParseHexColor parses "#rrggbb". An empty string is opaque black.
func ParseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor is ParseHexColor for values that already passed Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
