package curves

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/kinema"
	"github.com/npillmayer/kinema/hobby"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got kinema.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, delta, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, delta, "z of %v", got)
}

func TestPiecewiseLinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := NewPiecewiseLinear([]float64{0, 10, 0}, []float64{0, 5, 10})
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 10}, f.Interval())
	assert.InDelta(t, 5.0, f.Eval(2.5), 1e-12)
	assert.InDelta(t, 5.0, f.Eval(7.5), 1e-12)
	assert.Equal(t, 0.0, f.Eval(0))
	assert.Equal(t, 10.0, f.Eval(5), "nodes are reproduced exactly")
	assert.Equal(t, 0.0, f.Eval(10))
	assert.Equal(t, 0.0, f.Eval(-3), "clamped below")
	assert.Equal(t, 0.0, f.Eval(12), "clamped above")
}

func TestLinearInputErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewPiecewiseLinear([]float64{0, 1}, []float64{0, 1, 2})
	assert.True(t, errors.Is(err, kinema.ErrLengthMismatch))
	_, err = NewPiecewiseLinear([]float64{0, 1}, []float64{1, 1})
	assert.True(t, errors.Is(err, kinema.ErrGridNotIncreasing))
	_, err = NewPiecewiseLinear([]float64{0}, []float64{1})
	assert.True(t, errors.Is(err, kinema.ErrTooFewPoints))
	_, err = NewUniformPolygon([]kinema.Vec3{kinema.Origin, kinema.V3(1, 0, 0)}, 2, 2)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))
}

func TestLinearDoesNotAliasInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	values := []float64{0, 1}
	f, _ := NewPiecewiseLinear(values, []float64{0, 1})
	values[1] = 100
	assert.Equal(t, 1.0, f.Eval(1))
	pts := f.Points()
	pts[0] = 42
	assert.Equal(t, 0.0, f.Eval(0))
}

func TestLinearAppend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, _ := NewPiecewiseLinear([]float64{0, 10, 0}, []float64{0, 5, 10})
	assert.NoError(t, f.Append(5, 20))
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 20}, f.Interval())
	assert.InDelta(t, 2.5, f.Eval(15), 1e-12)
	assert.Equal(t, 4, f.N())
	err := f.Append(1, 20)
	assert.True(t, errors.Is(err, kinema.ErrGridNotIncreasing))
	assert.Equal(t, 4, f.N())
}

func TestPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []kinema.Vec3{kinema.Origin, kinema.V3(2, 0, 0), kinema.V3(2, 0, 2)}
	p, err := NewUniformPolygon(pts, 0, 2)
	assert.NoError(t, err)
	assertVec(t, kinema.V3(1, 0, 0), p.Eval(0.5), 1e-12)
	assertVec(t, kinema.V3(2, 0, 1), p.Eval(1.5), 1e-12)
	assert.Equal(t, []float64{0, 1, 2}, p.Grid())
	assertVec(t, kinema.V3(0, 0, 1), kinema.Tangent(p, 1.5), 1e-9)
}

func TestBezier(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := MustBezier(kinema.V3(0, 0, 0), kinema.V3(0, 1, 0), kinema.V3(1, 1, 0), kinema.V3(1, 0, 0))
	assert.Equal(t, 3, b.Degree())
	assertVec(t, kinema.V3(0.5, 0.75, 0), b.Eval(0.5), 1e-12)
	assert.Equal(t, kinema.V3(0, 0, 0), b.Eval(0))
	assert.Equal(t, kinema.V3(1, 0, 0), b.Eval(1))
	assert.Equal(t, kinema.V3(1, 0, 0), b.Eval(1.5), "clamped to the end point")
	assertVec(t, kinema.V3(0, 3, 0), b.Derivative(0), 1e-12)
	assertVec(t, kinema.V3(0, 1, 0), b.Tangent(0), 1e-12)
	assertVec(t, kinema.V3(1, 0, 0), b.Tangent(0.5), 1e-12)
	assertVec(t, kinema.V3(0, -6, 0), b.SecondDerivative(0.5), 1e-12)
	assertVec(t, kinema.V3(0, -1, 0), b.Normal(0.5), 1e-12)
}

func TestBezierLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := MustBezier(kinema.Origin, kinema.V3(0, 0, 4))
	assertVec(t, kinema.V3(0, 0, 1), b.Eval(0.25), 1e-12)
	assert.Equal(t, kinema.Origin, b.SecondDerivative(0.5))
	assert.Equal(t, kinema.Origin, b.Normal(0.5))
	_, err := NewBezier(kinema.Origin)
	assert.True(t, errors.Is(err, kinema.ErrTooFewPoints))
}

func TestCatmullRomInterpolates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []kinema.Vec3{kinema.V3(0, 0, 0), kinema.V3(1, 2, 0), kinema.V3(3, 1, 0), kinema.V3(4, 3, 1)}
	cr, err := NewUniformCatmullRom(pts)
	assert.NoError(t, err)
	assert.False(t, cr.IsClosed())
	for i, p := range pts {
		assert.Equal(t, p, cr.Eval(float64(i)), "node %d", i)
	}
}

func TestCatmullRomStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []kinema.Vec3{kinema.V3(0, 0, 0), kinema.V3(1, 0, 0), kinema.V3(2, 0, 0), kinema.V3(3, 0, 0)}
	cr, _ := NewUniformCatmullRom(pts)
	assertVec(t, kinema.V3(1.5, 0, 0), cr.Eval(1.5), 1e-12)
	assertVec(t, kinema.V3(0.25, 0, 0), cr.Eval(0.25), 1e-12)
}

func TestCatmullRomChordal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []kinema.Vec3{kinema.V3(0, 0, 0), kinema.V3(3, 0, 0), kinema.V3(3, 4, 0)}
	cr, err := NewCatmullRomAlpha(pts, Chordal)
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 7}, cr.Interval())
	assert.Equal(t, kinema.V3(3, 0, 0), cr.Eval(3))
	assert.Equal(t, kinema.V3(3, 4, 0), cr.Eval(7))
	assert.Equal(t, kinema.V3(3, 4, 0), cr.Eval(8))
}

func TestCatmullRomClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := []kinema.Vec3{
		kinema.V3(0, 0, 0), kinema.V3(1, 0, 0), kinema.V3(1, 0, 1), kinema.V3(0, 0, 1), kinema.V3(0, 0, 0),
	}
	cr, err := NewUniformCatmullRom(square)
	assert.NoError(t, err)
	assert.True(t, cr.IsClosed())
	// the tangent at the joint is continuous
	before := kinema.NumericTangent(cr, 0.01)
	after := kinema.Unit(kinema.Sub(cr.Eval(4), cr.Eval(3.99)))
	assertVec(t, before, after, 0.05)
}

func TestCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewGroundCircle(kinema.Origin, 2, 1)
	assertVec(t, kinema.V3(2, 0, 0), c.Eval(0), 1e-12)
	assertVec(t, kinema.V3(0, 0, 2), c.Eval(math.Pi/2), 1e-12)
	assertVec(t, kinema.V3(0, 0, 1), c.Tangent(0), 1e-12)
	assertVec(t, kinema.V3(-1, 0, 0), c.Normal(0), 1e-12)
	assert.False(t, c.Interval().IsBounded())
	_, err := NewCircle(kinema.Origin, 1, kinema.Origin, kinema.V3(0, 1, 0), 1)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateGeometry))
}

func TestHelix(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHelix(NewGroundCircle(kinema.Origin, 2, 1), kinema.V3(0, 1, 0))
	assertVec(t, kinema.V3(2, 2*math.Pi, 0), h.Eval(2*math.Pi), 1e-9)
	w := h.Tangent(0)
	assertVec(t, kinema.Unit(kinema.V3(0, 1, 2)), w, 1e-12)
	assertVec(t, kinema.V3(-1, 0, 0), h.Normal(0), 1e-12)
}

func TestScalarFunctions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	saw, err := NewSawtooth(2, 4)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, saw.Eval(1), 1e-12)
	assert.InDelta(t, 0.5, saw.Eval(5), 1e-12)
	assert.InDelta(t, 1.5, saw.Eval(-1), 1e-12)
	_, err = NewSawtooth(1, 0)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))
	g, _ := NewGaussian(0, 1)
	assert.InDelta(t, 0.398942, g.Eval(0), 1e-6)
	_, err = NewGaussian(0, -1)
	assert.Error(t, err)
	s := Sine{Amplitude: 2, Omega: math.Pi, Offset: 1}
	assert.InDelta(t, 3.0, s.Eval(0.5), 1e-12)
	assert.Equal(t, 7.0, Affine{A: 2, B: 1}.Eval(3))
}

func TestCubicSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, err := NewCubicSpline([]float64{0, 1, 0}, []float64{0, 1, 2})
	assert.NoError(t, err)
	assert.InDelta(t, -3.0, sp.m[1], 1e-12)
	assert.InDelta(t, 0.6875, sp.Eval(0.5), 1e-12)
	assert.InDelta(t, 0.6875, sp.Eval(1.5), 1e-12)
	assert.InDelta(t, 1.0, sp.Eval(1), 1e-12)
	assert.InDelta(t, 0.0, sp.Eval(2), 1e-12)
	assert.InDelta(t, 0.0, sp.Eval(-1), 1e-12)
}

func TestCubicSplineTwoNodesIsLinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, err := NewCubicSpline([]float64{1, 3}, []float64{0, 2})
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, sp.Eval(1), 1e-12)
	_, err = NewCubicSpline([]float64{1, 3}, []float64{0})
	assert.True(t, errors.Is(err, kinema.ErrLengthMismatch))
}

func TestHobbyCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := hobby.Nullpath().
		Knot(hobby.P(1, 1)).Curve().
		Knot(hobby.P(2, 2)).Curve().
		Knot(hobby.P(3, 1)).Curve().
		Knot(hobby.P(2, 0)).Curve().Cycle()
	hc, err := NewHobbyCurve(path)
	assert.NoError(t, err)
	assert.Equal(t, 4, hc.Segments())
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 4}, hc.Interval())
	assertVec(t, kinema.V3(1, 0, 1), hc.Eval(0), 1e-12)
	assertVec(t, kinema.V3(2, 0, 2), hc.Eval(1), 1e-12)
	assertVec(t, kinema.V3(1, 0, 1), hc.Eval(4), 1e-12)
	assertVec(t, kinema.V3(1, 0, 0), hc.Tangent(1), 1e-6)
	// a circle of radius 1 around (2,1)
	mid := hc.Eval(0.5)
	assert.InDelta(t, 1.0, math.Hypot(mid.X-2, mid.Z-1), 0.01)
	assert.NotPanics(t, func() { hc.Eval(math.NaN()) })
	assert.NotPanics(t, func() { hc.Tangent(math.NaN()) })
	assertVec(t, kinema.V3(1, 0, 1), hc.Eval(-3), 1e-12)
}

func TestHobbyCurveOnPlane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	wall := Plane{Origin: kinema.V3(0, 0, 5), U: kinema.V3(1, 0, 0), V: kinema.V3(0, 1, 0)}
	path := hobby.Nullpath().Knot(hobby.P(0, 0)).Curve().Knot(hobby.P(3, 0)).End()
	hc, err := NewHobbyCurveOn(path, wall)
	assert.NoError(t, err)
	assertVec(t, kinema.V3(1.5, 0, 5), hc.Eval(0.5), 1e-9)
	_, err = NewHobbyCurve(hobby.Nullpath().Knot(hobby.P(0, 0)).End())
	assert.True(t, errors.Is(err, hobby.ErrTooFewKnots))
}
