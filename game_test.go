package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/config"
	"github.com/milk9111/communityrpg/maps"
	"github.com/milk9111/communityrpg/stage"
	"github.com/milk9111/communityrpg/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStage struct {
	entered int
	updates int
	next    stage.Stage
	err     error
	speed   float64
	margins viewport.Margins
}

func (s *fakeStage) Enter() { s.entered++ }

func (s *fakeStage) Update() (stage.Stage, error) {
	s.updates++
	return s.next, s.err
}

func (s *fakeStage) Draw(screen *ebiten.Image) {}

func (s *fakeStage) ApplyConfig(speed float64, m viewport.Margins) {
	s.speed = speed
	s.margins = m
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		images: func(string) (*ebiten.Image, error) { return nil, nil },
	}
}

func TestSetStageEnters(t *testing.T) {
	g := newTestGame(t)
	s := &fakeStage{}
	g.SetStage(s)
	assert.Same(t, s, g.Stage())
	assert.Equal(t, 1, s.entered)
}

func TestUpdateSwapsStage(t *testing.T) {
	g := newTestGame(t)
	second := &fakeStage{}
	first := &fakeStage{next: second}
	g.SetStage(first)

	require.NoError(t, g.Update())
	assert.Same(t, second, g.Stage())
	assert.Equal(t, 1, second.entered)
	assert.Zero(t, second.updates)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestUpdateReturnsStageError(t *testing.T) {
	g := newTestGame(t)
	boom := errors.New("boom")
	next := &fakeStage{}
	first := &fakeStage{err: boom, next: next}
	g.SetStage(first)

	require.ErrorIs(t, g.Update(), boom)
	assert.Same(t, first, g.Stage())
	assert.Zero(t, next.entered)
}

func TestLayoutIsConfiguredSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.LayoutF(1920, 1080)
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)

	iw, ih := g.Layout(10, 10)
	assert.Equal(t, 1024, iw)
	assert.Equal(t, 768, ih)
}

func TestStartMap(t *testing.T) {
	list := []*maps.Map{{Name: "main"}, {Name: "cave"}}

	cases := []struct {
		name    string
		flag    string
		cfg     string
		list    []*maps.Map
		want    int
		wantErr bool
	}{
		{"configured", "", "main", list, 0, false},
		{"flag_wins", "cave", "main", list, 1, false},
		{"first_when_unset", "", "", list, 0, false},
		{"unknown", "dungeon", "main", list, 0, true},
		{"none_loaded", "", "", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.opts.StartMap = tc.flag
			g.cfg.Maps.Start = tc.cfg

			got, err := g.startMap(tc.list)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownMap)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCachedImages(t *testing.T) {
	calls := 0
	img := &ebiten.Image{}
	load := cachedImages(func(string) (*ebiten.Image, error) {
		calls++
		return img, nil
	})

	for range 3 {
		got, err := load("tiles/overworld.png")
		require.NoError(t, err)
		assert.Same(t, img, got)
	}
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	failing := cachedImages(func(string) (*ebiten.Image, error) { return nil, boom })
	_, err := failing("x.png")
	require.ErrorIs(t, err, boom)
}

func TestBuildWorld(t *testing.T) {
	g := newTestGame(t)
	g.opts.StartMap = "main"
	set := maps.NewLayerSet()
	set.Add(&maps.Layer{Name: "ground"})
	set.Add(&maps.Layer{Name: "walls_blocking", Blocking: true, Tiles: []maps.Tile{{Left: 0, Bottom: 0, W: 32, H: 32}}})
	list := []*maps.Map{
		{Name: "cave", Layers: maps.NewLayerSet(), Width: 800, Height: 640},
		{Name: "main", Layers: set, Width: 1280, Height: 1280},
	}

	s, err := g.buildWorld(list)
	require.NoError(t, err)
	require.IsType(t, &stage.Game{}, s)

	gs := s.(*stage.Game)
	assert.Equal(t, "main", gs.Level().Name)
	assert.Len(t, gs.Level().Walls(), 1)
	assert.Equal(t, 500.0, gs.Player().CenterX)
	assert.Equal(t, 1000.0, gs.Player().CenterY)
	assert.Equal(t, viewport.Uniform(300), gs.Camera().Margins())

	_, err = g.buildWorld(nil)
	require.ErrorIs(t, err, ErrUnknownMap)
}

func TestApplyConfigReachesStage(t *testing.T) {
	g := newTestGame(t)
	s := &fakeStage{}
	g.SetStage(s)

	cfg, err := config.Parse([]byte("player:\n  speed: 5\nviewport:\n  left: 100\n"))
	require.NoError(t, err)
	g.applyConfig(cfg)

	assert.Equal(t, 5.0, s.speed)
	assert.Equal(t, viewport.Margins{Left: 100, Right: 300, Top: 300, Bottom: 300}, s.margins)
	assert.Equal(t, 5.0, g.cfg.Player.Speed)
}

func TestMapsCommand(t *testing.T) {
	var out bytes.Buffer
	mapsCmd.SetOut(&out)
	t.Cleanup(func() { mapsCmd.SetOut(nil) })

	require.NoError(t, runMaps(mapsCmd, nil))
	got := out.String()
	assert.Contains(t, got, "main (start)")
	assert.Contains(t, got, "cave")
	assert.Regexp(t, `walls_blocking\s+yes`, got)
	assert.Regexp(t, `ground\s+no`, got)
}
