package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/assets"
	"github.com/milk9111/communityrpg/config"
	"github.com/milk9111/communityrpg/maps"
	"github.com/milk9111/communityrpg/obj"
	"github.com/milk9111/communityrpg/stage"
	"github.com/milk9111/communityrpg/viewport"
)

// ErrUnknownMap is returned when the start map is not among the loaded maps.
var ErrUnknownMap = errors.New("unknown map")

// Options are the command-line choices that are not part of the config file.
type Options struct {
	ConfigPath string
	StartMap   string
	Debug      bool
	Watch      bool
}

// tunable is a stage that accepts live config changes.
type tunable interface {
	ApplyConfig(speed float64, m viewport.Margins)
}

// Game owns the active stage and swaps it when the stage hands off.
type Game struct {
	cfg    *config.Config
	opts   Options
	logger *log.Logger

	stage   stage.Stage
	watcher *config.Watcher
	images  obj.ImageLoader
}

// NewGame starts on a loading stage for every configured map.
func NewGame(cfg *config.Config, opts Options, logger *log.Logger) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
		images: assets.LoadImage,
	}

	if opts.Watch {
		p := opts.ConfigPath
		if p == "" {
			p = config.LocalPath
		}
		w, err := config.NewWatcher(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		g.watcher = w
		logger.Info("watching config", "path", p)
	}

	loader := maps.NewFileLoader(assets.FS(), cfg.Maps.Files, maps.Options{
		Scaling:        cfg.Tiles.Scaling,
		BlockingMarker: cfg.Tiles.BlockingMarker,
	}, logger.WithPrefix("maps"))
	g.SetStage(stage.NewLoading(loader, g.buildWorld, config.MustColor(cfg.Window.LoadingBackground), logger.WithPrefix("loading")))
	return g, nil
}

// SetStage makes s the active stage and starts it.
func (g *Game) SetStage(s stage.Stage) {
	g.stage = s
	if e, ok := s.(stage.Enterer); ok {
		e.Enter()
	}
}

func (g *Game) Stage() stage.Stage {
	return g.stage
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.reload()

	next, err := g.stage.Update()
	if err != nil {
		return err
	}
	if next != nil {
		g.SetStage(next)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// startMap is the index of the map named on the command line, else the
// configured one, else the first loaded.
func (g *Game) startMap(list []*maps.Map) (int, error) {
	if len(list) == 0 {
		return 0, fmt.Errorf("%w: no maps loaded", ErrUnknownMap)
	}
	name := g.opts.StartMap
	if name == "" {
		name = g.cfg.Maps.Start
	}
	if name == "" {
		return 0, nil
	}
	i := maps.Index(list, name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return i, nil
}

// cachedImages wraps load so each path is loaded once.
func cachedImages(load obj.ImageLoader) obj.ImageLoader {
	cache := make(map[string]*ebiten.Image)
	return func(p string) (*ebiten.Image, error) {
		if img, ok := cache[p]; ok {
			return img, nil
		}
		img, err := load(p)
		if err != nil {
			return nil, err
		}
		cache[p] = img
		return img, nil
	}
}

// buildWorld turns the loaded maps into the playable stage.
func (g *Game) buildWorld(list []*maps.Map) (stage.Stage, error) {
	current, err := g.startMap(list)
	if err != nil {
		return nil, err
	}

	images := cachedImages(g.images)
	levels := make([]*obj.Level, 0, len(list))
	for _, m := range list {
		level, err := obj.NewLevel(m, images)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	pc := g.cfg.Player
	sheet, err := images(pc.Sheet)
	if err != nil {
		return nil, fmt.Errorf("player sheet: %w", err)
	}
	var frames []*ebiten.Image
	if sheet != nil {
		frames, err = obj.SliceSheet(sheet, pc.FrameWidth, pc.FrameHeight, pc.Columns, pc.Frames)
		if err != nil {
			return nil, fmt.Errorf("player sheet %s: %w", pc.Sheet, err)
		}
	}
	player := obj.NewPlayer(frames, float64(pc.FrameWidth), float64(pc.FrameHeight), pc.StartX, pc.StartY)

	cam := obj.NewCamera(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Viewport.Margins())
	return stage.NewGame(levels, current, player, cam, stage.Settings{
		Speed:      pc.Speed,
		Margins:    g.cfg.Viewport.Margins(),
		Background: config.MustColor(g.cfg.Window.Background),
		Debug:      g.opts.Debug,
	}, g.logger.WithPrefix("game")), nil
}

// reload applies pending config file changes to the running stage. A file
// that fails to load leaves the current settings in place.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("config watch", "err", err)
		}
	default:
	}

	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	cfg, err := config.Load(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("config reload failed", "path", name, "err", err)
		return
	}
	g.applyConfig(cfg)
}

func (g *Game) applyConfig(cfg *config.Config) {
	g.cfg.Viewport = cfg.Viewport
	g.cfg.Player.Speed = cfg.Player.Speed
	if t, ok := g.stage.(tunable); ok {
		t.ApplyConfig(cfg.Player.Speed, cfg.Viewport.Margins())
	}
	g.logger.Info("config reloaded", "speed", cfg.Player.Speed)
}
