package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var screen1024 = Size{W: 1024, H: 768}

func TestScrollInsideMarginsIsNoop(t *testing.T) {
	cases := []struct {
		name   string
		box    Rect
		origin Origin
	}{
		{"centred", FromCenter(512, 384, 32, 32), Origin{}},
		{"offset_view", FromCenter(1512, 2384, 32, 32), Origin{Left: 1000, Bottom: 2000}},
		{"negative_view", FromCenter(-200, -100, 32, 32), Origin{Left: -700, Bottom: -500}},
		{"fractional_box", Rect{Left: 300.5, Right: 330.25, Bottom: 300.75, Top: 331.5}, Origin{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, changed := Scroll(c.box, c.origin, screen1024, Uniform(300))
			assert.False(t, changed)
			assert.Equal(t, c.origin, got)
		})
	}
}

func TestScrollLeftScenario(t *testing.T) {
	box := Rect{Left: 50, Right: 82, Bottom: 400, Top: 432}

	got, changed := Scroll(box, Origin{}, screen1024, Uniform(300))
	require.True(t, changed)
	assert.Equal(t, Origin{Left: -250, Bottom: 0}, got)
}

func TestScrollEachEdge(t *testing.T) {
	m := Uniform(300)
	cases := []struct {
		name string
		box  Rect
		want Origin
	}{
		// right boundary = 0 + 1024 - 300 = 724
		{"right", Rect{Left: 700, Right: 732, Bottom: 400, Top: 432}, Origin{Left: 8, Bottom: 0}},
		// top boundary = 0 + 768 - 300 = 468
		{"top", Rect{Left: 400, Right: 432, Bottom: 450, Top: 482}, Origin{Left: 0, Bottom: 14}},
		// bottom boundary = 300
		{"bottom", Rect{Left: 400, Right: 432, Bottom: 290, Top: 322}, Origin{Left: 0, Bottom: -10}},
		{"left_and_bottom", Rect{Left: 280, Right: 312, Bottom: 250, Top: 282}, Origin{Left: -20, Bottom: -50}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, changed := Scroll(c.box, Origin{}, screen1024, m)
			require.True(t, changed)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestScrollIndependentMargins(t *testing.T) {
	m := Margins{Left: 100, Right: 200, Top: 50, Bottom: 10}
	box := Rect{Left: 120, Right: 830, Bottom: 20, Top: 30}

	// right boundary 1024-200 = 824 < 830, left boundary 100 < 120
	got, changed := Scroll(box, Origin{}, screen1024, m)
	require.True(t, changed)
	assert.Equal(t, Origin{Left: 6, Bottom: 0}, got)
}

func TestScrollTruncatesFractions(t *testing.T) {
	cases := []struct {
		name string
		box  Rect
		want Origin
	}{
		// 0 - (300 - 50.75) = -249.25 -> -249
		{"negative_left", Rect{Left: 50.75, Right: 82.75, Bottom: 400, Top: 432}, Origin{Left: -249}},
		// 732.6 - 724 = 8.6 -> 8
		{"positive_right", Rect{Left: 700.6, Right: 732.6, Bottom: 400, Top: 432}, Origin{Left: 8}},
		// 482.9 - 468 = 14.9 -> 14
		{"positive_top", Rect{Left: 400, Right: 432, Bottom: 450.9, Top: 482.9}, Origin{Bottom: 14}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, changed := Scroll(c.box, Origin{}, screen1024, Uniform(300))
			require.True(t, changed)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestScrollConvergesOnStillBox(t *testing.T) {
	box := FromCenter(3000, -1200, 32, 32)
	o := Origin{}
	o, changed := Scroll(box, o, screen1024, Uniform(300))
	require.True(t, changed)

	// one pixel of truncation slack at most
	again, changed := Scroll(box, o, screen1024, Uniform(300))
	if changed {
		assert.InDelta(t, o.Left, again.Left, 1)
		assert.InDelta(t, o.Bottom, again.Bottom, 1)
	}
}
