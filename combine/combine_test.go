package combine

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/kinema"
	"github.com/npillmayer/kinema/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func identity(tmin, tmax float64) kinema.RealFunction {
	return kinema.NewFunc(kinema.Interval{TMin: tmin, TMax: tmax}, func(t float64) float64 { return t })
}

func fall(tmin, tmax float64) kinema.RealFunction {
	return kinema.NewFunc(kinema.Interval{TMin: tmin, TMax: tmax}, func(t float64) float64 { return 10 - t })
}

func TestConnect2TieBreak(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := Connect2(identity(0, 5), 5, fall(5, 10))
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 10}, f.Interval())
	assert.Equal(t, 3.0, f.Eval(3))
	assert.Equal(t, 5.0, f.Eval(5), "t = mid belongs to f2")
	assert.Equal(t, 3.0, f.Eval(7))
}

func TestConnect3(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, _ := Constant(100.0, 2, 3)
	f, err := Connect3(identity(0, 2), 2, kinema.RealFunction(c), 3, fall(3, 10))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, f.Eval(1))
	assert.Equal(t, 100.0, f.Eval(2))
	assert.Equal(t, 7.0, f.Eval(3))
	_, err = Connect3(identity(0, 2), 3, kinema.RealFunction(c), 2, fall(3, 10))
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
}

func TestConnect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mid, _ := Constant(5.0, 5, 8)
	f, err := Connect[float64](identity(0, 5), mid, fall(8, 10))
	assert.NoError(t, err)
	assert.Equal(t, 3, f.N())
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 10}, f.Interval())
	assert.Equal(t, 3.0, f.Eval(3))
	assert.Equal(t, 5.0, f.Eval(6))
	assert.Equal(t, 1.0, f.Eval(9))
	// boundaries belong to the later piece
	assert.Equal(t, 1, f.Piece(5))
	assert.Equal(t, 2, f.Piece(8))
	assert.Equal(t, 2.0, f.Eval(8))
	// outside the domain, the first and last piece are responsible
	assert.Equal(t, 0, f.Piece(-1))
	assert.Equal(t, 2, f.Piece(12))
	assert.Equal(t, 0, f.Piece(math.NaN()))
}

func TestConnectUnboundedEnds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := Connect(identity(math.Inf(-1), 0), fall(0, math.Inf(1)))
	assert.NoError(t, err)
	assert.False(t, f.Interval().IsBounded())
	assert.Equal(t, -1000.0, f.Eval(-1000))
	assert.Equal(t, -990.0, f.Eval(1000))
}

func TestConnectDomainMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Connect(identity(0, 5), fall(6, 10))
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
	_, err = Connect(identity(0, 5), fall(4, 10))
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
	_, err = Connect[float64]()
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
	_, err = Connect[float64](identity(0, 5), nil)
	assert.True(t, errors.Is(err, kinema.ErrNilFunction))
	point := kinema.NewFunc(kinema.Interval{TMin: 5, TMax: 5}, func(float64) float64 { return 7 })
	_, err = Connect[float64](identity(0, 5), point, fall(5, 10))
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))
}

func TestCompose(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := kinema.NewFunc(kinema.Interval{TMin: 0, TMax: 100}, func(t float64) float64 { return t * t })
	f := Compose[float64](square, identity(0, 4))
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 4}, f.Interval())
	assert.Equal(t, 9.0, f.Eval(3))
	delayed := Compose[float64](square, curves.Affine{A: 1, B: -2})
	assert.Equal(t, 1.0, delayed.Eval(3))
}

func TestComposeVecTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle := curves.NewGroundCircle(kinema.Origin, 1, 1)
	reverse := curves.Affine{A: -1}
	c := ComposeVec(circle, reverse)
	w := c.Tangent(0)
	assert.InDelta(t, 1.0, w.Z, 1e-9, "without chain rule, f's tangent is used")
	c.ChainRule(true)
	w = c.Tangent(0)
	assert.InDelta(t, -1.0, w.Z, 1e-9, "with chain rule, the tangent follows the reversed motion")
	n := c.Normal(0)
	assert.InDelta(t, -1.0, n.X, 1e-9)
	assert.Equal(t, circle.Eval(-1), c.Eval(1))
}

func TestBlend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	one, _ := Constant(1.0, 0, 10)
	three, _ := Constant(3.0, 0, 10)
	b, err := Blend[float64](one, three, 2, 6)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, b.Eval(2))
	assert.Equal(t, 2.0, b.Eval(4))
	assert.Equal(t, 3.0, b.Eval(6))
	assert.Equal(t, 3.0, b.Eval(8), "weight saturates")
	_, err = Blend[float64](one, three, 5, 12)
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
	_, err = Blend[float64](one, three, 5, 5)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))
}

func TestTransitionVectors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr, err := Transition(kinema.V3(0, 0, 0), kinema.V3(4, 0, 2), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, kinema.V3(2, 0, 1), tr.Eval(2))
	_, err = Transition(0.0, 1.0, 3, 1)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))
}

func TestConstantShiftRestrict(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Constant(kinema.V3(1, 2, 3), math.Inf(-1), math.Inf(1))
	assert.NoError(t, err)
	assert.Equal(t, kinema.V3(1, 2, 3), c.Eval(1e9))
	_, err = Constant(1.0, 2, 2)
	assert.True(t, errors.Is(err, kinema.ErrDegenerateInterval))

	s, err := Shift(identity(0, 10), 5.0, 2, 4)
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 2, TMax: 4}, s.Interval())
	assert.Equal(t, 8.0, s.Eval(3))
	_, err = Shift(identity(0, 10), 5.0, 2, 14)
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))

	r, err := Restrict(identity(0, 10), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 1, TMax: 2}, r.Interval())
	assert.Equal(t, 1.5, r.Eval(1.5))
}

func TestRescale(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Rescale(identity(0, 10), 100, 102)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.Eval(100))
	assert.Equal(t, 5.0, r.Eval(101))
	assert.Equal(t, 10.0, r.Eval(102))
	_, err = Rescale[float64](curves.Affine{A: 1}, 0, 1)
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
}

func TestCombineTouching(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := Combine(identity(0, 5), fall(5, 10))
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f.Eval(3))
	assert.Equal(t, 5.0, f.Eval(5))
	assert.Equal(t, 3.0, f.Eval(7))
}

func TestCombineGap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := Combine(identity(0, 2), fall(4, 10))
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 10}, f.Interval())
	assert.Equal(t, 1.0, f.Eval(1))
	assert.InDelta(t, 4.0, f.Eval(3), 1e-12, "halfway between 2 and 6")
	assert.Equal(t, 5.0, f.Eval(5))
}

func TestCombineOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	one, _ := Constant(1.0, 0, 6)
	three, _ := Constant(3.0, 4, 10)
	f, err := Combine[float64](one, three)
	assert.NoError(t, err)
	assert.Equal(t, kinema.Interval{TMin: 0, TMax: 10}, f.Interval())
	assert.Equal(t, 1.0, f.Eval(2))
	assert.Equal(t, 2.0, f.Eval(5))
	assert.Equal(t, 3.0, f.Eval(8))
	_, err = Combine[float64](three, one)
	assert.True(t, errors.Is(err, kinema.ErrDomainMismatch))
}

func TestCombineShift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	walk1, _ := curves.NewPolygon([]kinema.Vec3{kinema.Origin, kinema.V3(2, 0, 0)}, []float64{0, 2})
	walk2, _ := curves.NewPolygon([]kinema.Vec3{kinema.V3(10, 0, 10), kinema.V3(10, 0, 12)}, []float64{2, 4})
	f, err := CombineShift[kinema.Vec3](walk1, walk2)
	assert.NoError(t, err)
	assert.Equal(t, kinema.V3(2, 0, 0), f.Eval(2))
	assert.Equal(t, kinema.V3(2, 0, 1), f.Eval(3))
	assert.Equal(t, kinema.V3(2, 0, 2), f.Eval(4))
}
