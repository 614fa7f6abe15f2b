package kinema

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected a to be zapped, is %g", Zap(a))
	}
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestInterval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	iv, err := NewInterval(1, 3)
	assert.NoError(t, err)
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(3.0001))
	assert.Equal(t, 1.0, iv.Clamp(-7))
	assert.Equal(t, 3.0, iv.Clamp(7))
	assert.Equal(t, 2.0, iv.Duration())
	assert.True(t, iv.IsBounded())
	assert.False(t, Unbounded().IsBounded())
	assert.Equal(t, "[1,3]", iv.String())
}

func TestDegenerateInterval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, bounds := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}} {
		_, err := NewInterval(bounds[0], bounds[1])
		if !errors.Is(err, ErrDegenerateInterval) {
			t.Errorf("expected ErrDegenerateInterval for %v, got %v", bounds, err)
		}
	}
}

func TestDomainMutation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFunc(Interval{0, 1}, func(t float64) float64 { return 2 * t })
	f.SetTMax(4)
	f.SetTMin(-1)
	assert.Equal(t, Interval{-1, 4}, f.Interval())
	assert.Equal(t, 8.0, f.Eval(4))
}

func TestCheckGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, CheckGrid([]float64{0, 1, 2}))
	assert.True(t, errors.Is(CheckGrid([]float64{0}), ErrTooFewPoints))
	assert.True(t, errors.Is(CheckGrid([]float64{0, 1, 1}), ErrGridNotIncreasing))
	assert.True(t, errors.Is(CheckGrid([]float64{0, math.NaN()}), ErrGridNotIncreasing))
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	grid := []float64{0, 5, 10}
	cases := []struct {
		t    float64
		i    int
		w    float64
		isIn bool
	}{
		{0, 0, 0, true},
		{2.5, 0, 0.5, true},
		{5, 1, 0, true}, // half-open: a node starts the next segment
		{7.5, 1, 0.5, true},
		{10, 1, 1, true},
		{-1, 0, 0, false},
		{11, 1, 1, false},
	}
	for _, c := range cases {
		i, w, ok := Locate(grid, c.t)
		assert.Equal(t, c.i, i, "segment for t=%g", c.t)
		assert.Equal(t, c.w, w, "weight for t=%g", c.t)
		assert.Equal(t, c.isIn, ok, "range flag for t=%g", c.t)
	}
	_, _, ok := Locate(grid, math.NaN())
	assert.False(t, ok)
}

func TestUniformGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, UniformGrid(5, 0, 1))
}

func TestLerpValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 5.0, Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, V3(1, 2, 3), Lerp(V3(1, 2, 3), V3(7, 7, 7), 0))
	assert.Equal(t, V3(2, 1, 0), Lerp(V3(0, 0, 0), V3(4, 2, 0), 0.5))
	assert.Equal(t, V4(1, 1, 1, 1), Lerp(V4(0, 0, 0, 0), V4(2, 2, 2, 2), 0.5))
	assert.Equal(t, 5.0, Dist(V3(0, 0, 0), V3(3, 4, 0)))
	assert.Equal(t, 2.0, Dist(V4(0, 0, 0, 1), V4(0, 0, 0, 3)))
	assert.Equal(t, 3.0, Dist(-1.0, 2.0))
}
