package anim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandRanges(t *testing.T) {
	cases := []struct {
		band       Band
		start, end int
	}{
		{BandDown, 0, 2},
		{BandLeft, 3, 5},
		{BandRight, 6, 8},
		{BandUp, 9, 11},
	}

	for _, c := range cases {
		t.Run(c.band.String(), func(t *testing.T) {
			assert.Equal(t, c.start, c.band.Start())
			assert.Equal(t, c.end, c.band.End())
			for f := c.start; f <= c.end; f++ {
				assert.Equal(t, c.band, BandOf(f))
			}
		})
	}
}

func TestBandForPriority(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   Band
	}{
		{"right", 3, 0, BandRight},
		{"left", -3, 0, BandLeft},
		{"up", 0, 3, BandUp},
		{"down", 0, -3, BandDown},
		{"right_beats_up", 3, 3, BandRight},
		{"left_beats_down", -3, -3, BandLeft},
		{"idle", 0, 0, BandDown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BandFor(c.dx, c.dy))
		})
	}
}

func TestAdvanceIdleKeepsFrame(t *testing.T) {
	for f := 0; f < FrameCount; f++ {
		got := f
		for i := 0; i < 10; i++ {
			got = Advance(got, 0, 0)
		}
		assert.Equal(t, f, got)
	}
}

func TestAdvanceCycles(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		dx, dy float64
		want   []int
	}{
		{"right_from_zero", 0, 3, 0, []int{6, 7, 8, 6, 7}},
		{"left_from_zero", 0, -3, 0, []int{3, 4, 5, 3}},
		{"up_from_zero", 0, 0, 3, []int{9, 10, 11, 9}},
		{"down_from_zero", 0, 0, -3, []int{1, 2, 0, 1}},
		{"down_from_up_band", 10, 0, -3, []int{0, 1, 2, 0}},
		{"right_from_last_frame", 11, 3, 0, []int{6, 7}},
		{"left_mid_band", 4, -3, 0, []int{5, 3, 4}},
		{"diagonal_uses_horizontal", 0, -3, 3, []int{3, 4, 5, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := c.start
			for i, want := range c.want {
				f = Advance(f, c.dx, c.dy)
				require.Equalf(t, want, f, "step %d", i)
			}
		})
	}
}

func TestAnimatorStaysInBandOfLastDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	speeds := []float64{-3, 0, 3}

	var a Animator
	last := BandDown
	for i := 0; i < 2000; i++ {
		dx := speeds[rng.Intn(len(speeds))]
		dy := speeds[rng.Intn(len(speeds))]
		a.Step(dx, dy)
		if dx != 0 || dy != 0 {
			last = BandFor(dx, dy)
		}
		require.GreaterOrEqual(t, a.Frame, 0)
		require.Less(t, a.Frame, FrameCount)
		require.Equalf(t, last, a.Band(), "step %d frame %d", i, a.Frame)
	}
}

func TestAnimatorStepReportsChange(t *testing.T) {
	a := Animator{Frame: 7}
	assert.False(t, a.Step(0, 0))
	assert.True(t, a.Step(3, 0))
	assert.Equal(t, 8, a.Frame)
}
