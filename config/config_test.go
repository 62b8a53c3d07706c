package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesClassicSetup(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, ViewportSpec{Left: 300, Right: 300, Top: 300, Bottom: 300}, cfg.Viewport)
	assert.Equal(t, 3.0, cfg.Player.Speed)
	assert.Equal(t, 12, cfg.Player.Frames)
	assert.Equal(t, 3, cfg.Player.Columns)
	assert.Equal(t, "_blocking", cfg.Tiles.BlockingMarker)
	assert.Equal(t, 0, cfg.MapIndex("main"))
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("viewport:\n  left: 120\nplayer:\n  speed: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Viewport.Left)
	assert.Equal(t, 300.0, cfg.Viewport.Right)
	assert.Equal(t, 5.0, cfg.Player.Speed)
	assert.Equal(t, 1024, cfg.Window.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_width", "window:\n  width: 0\n"},
		{"negative_margin", "viewport:\n  top: -1\n"},
		{"no_marker", "tiles:\n  blocking_marker: \"\"\n"},
		{"bad_colour", "window:\n  background: green\n"},
		{"unknown_start", "maps:\n  start: nowhere\n"},
		{"no_maps", "maps:\n  start: \"\"\n  files: []\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("window: [\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(p, []byte("window:\n  title: Test\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Window.Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMapName(t *testing.T) {
	assert.Equal(t, "main", MapName("maps/main.tmx"))
	assert.Equal(t, "cave", MapName("cave.tmx"))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#3b7a57")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x3b), c.R)
	assert.Equal(t, uint8(0x7a), c.G)
	assert.Equal(t, uint8(0x57), c.B)
	assert.Equal(t, uint8(0xff), c.A)

	_, err = ParseHexColor("#12")
	assert.Error(t, err)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("player:\n  speed: 3\n"), 0o644))

	w, err := NewWatcher(p)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(p, []byte("player:\n  speed: 4\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "config.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}
}

func TestWatcherWaitsForTruncateThenWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("player:\n  speed: 3\n"), 0o644))

	w, err := NewWatcher(p)
	require.NoError(t, err)
	defer w.Close()

	// editors truncate, then write the new content
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	_, err = f.WriteString("player:\n  speed: 9\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var speeds []float64
	timeout := time.After(5 * time.Second)
	for {
		select {
		case <-w.Events:
			cfg, err := Load(p)
			require.NoError(t, err)
			speeds = append(speeds, cfg.Player.Speed)
			continue
		case <-timeout:
			t.Fatal("no event for config write")
		case <-time.After(500 * time.Millisecond):
			if len(speeds) == 0 {
				continue
			}
		}
		break
	}
	assert.Equal(t, []float64{9}, speeds)
}
