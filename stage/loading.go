package stage

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/maps"
)

// LoadState is the progress of a Loading stage.
type LoadState int

const (
	NotStarted LoadState = iota
	InProgress
	Complete
)

func (s LoadState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "loading"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Builder makes the stage that follows loading from the loaded maps.
type Builder func(list []*maps.Map) (Stage, error)

// Loading polls a map loader once per tick while showing a progress bar,
// then hands the maps to the next stage exactly once.
type Loading struct {
	loader maps.Loader
	build  Builder
	logger *log.Logger

	state    LoadState
	progress float64

	background color.Color
	newUI      func() (*loadingUI, error)
	ui         *loadingUI
	uiErr      error
}

func NewLoading(loader maps.Loader, build Builder, background color.Color, logger *log.Logger) *Loading {
	if background == nil {
		background = color.White
	}
	return &Loading{
		loader:     loader,
		build:      build,
		logger:     logger,
		background: background,
		newUI:      newLoadingUI,
	}
}

// Enter starts loading. Only the first call has an effect.
func (l *Loading) Enter() {
	if l.state != NotStarted {
		return
	}
	l.state = InProgress
	l.logger.Debug("loading started")
}

func (l *Loading) State() LoadState {
	return l.state
}

// Progress is the last percentage reported by the loader.
func (l *Loading) Progress() float64 {
	return l.progress
}

// Update polls the loader once. When it reports done the next stage is built
// and returned; later calls do nothing.
func (l *Loading) Update() (Stage, error) {
	if l.ui != nil {
		l.ui.Update()
	}
	if l.state != InProgress {
		return nil, nil
	}

	p, err := l.loader.Poll()
	if err != nil {
		return nil, fmt.Errorf("loading: %w", err)
	}
	l.progress = min(max(p.Percent, 0), 100)
	if !p.Done {
		return nil, nil
	}

	l.state = Complete
	l.logger.Info("maps loaded", "count", len(p.Maps))
	next, err := l.build(p.Maps)
	if err != nil {
		return nil, fmt.Errorf("loading: build stage: %w", err)
	}
	return next, nil
}

func (l *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(l.background)
	ui := l.screenUI()
	if ui == nil {
		return
	}
	ui.SetProgress(l.progress)
	ui.Draw(screen)
}

// screenUI builds the loading screen on first use. A failed build is logged
// once and not retried; only the background is drawn after that.
func (l *Loading) screenUI() *loadingUI {
	if l.ui != nil || l.uiErr != nil {
		return l.ui
	}
	l.ui, l.uiErr = l.newUI()
	if l.uiErr != nil {
		l.ui = nil
		l.logger.Error("loading screen", "err", l.uiErr)
	}
	return l.ui
}
