package curves

import (
	"fmt"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bezier is a Bézier curve of arbitrary degree over the domain [0,1].
type Bezier struct {
	kinema.Domain
	points []kinema.Vec3
}

// NewBezier creates a Bézier curve from its control polygon. A curve of
// degree n needs n+1 control points, n ≥ 1.
func NewBezier(points ...kinema.Vec3) (*Bezier, error) {
	if len(points) < 2 {
		err := fmt.Errorf("%w: Bézier curve needs at least 2 control points, got %d",
			kinema.ErrTooFewPoints, len(points))
		tracer().Errorf("%v", err)
		return nil, err
	}
	return &Bezier{
		Domain: kinema.MakeDomain(kinema.Interval{TMin: 0, TMax: 1}),
		points: append([]kinema.Vec3(nil), points...),
	}, nil
}

// MustBezier is like NewBezier, but panics on invalid input.
func MustBezier(points ...kinema.Vec3) *Bezier {
	b, err := NewBezier(points...)
	if err != nil {
		panic(err)
	}
	return b
}

// Degree is the count of control points minus 1.
func (b *Bezier) Degree() int {
	return len(b.points) - 1
}

// Points returns a copy of the control polygon.
func (b *Bezier) Points() []kinema.Vec3 {
	return append([]kinema.Vec3(nil), b.points...)
}

// Eval evaluates the curve with de Casteljau's algorithm.
func (b *Bezier) Eval(t float64) kinema.Vec3 {
	t = kinema.ClampWarn(b.Interval(), "Bezier", t)
	return deCasteljau(b.points, t)
}

// Derivative returns the first derivative at t, evaluated on the hodograph
// of the control polygon.
func (b *Bezier) Derivative(t float64) kinema.Vec3 {
	n := b.Degree()
	d := make([]kinema.Vec3, n)
	for i := range d {
		d[i] = r3.Scale(float64(n), r3.Sub(b.points[i+1], b.points[i]))
	}
	return deCasteljau(d, b.Interval().Clamp(t))
}

// SecondDerivative returns the second derivative at t. It is zero for
// curves of degree 1.
func (b *Bezier) SecondDerivative(t float64) kinema.Vec3 {
	n := b.Degree()
	if n < 2 {
		return kinema.Origin
	}
	d := make([]kinema.Vec3, n-1)
	for i := range d {
		dd := r3.Add(r3.Sub(b.points[i+2], r3.Scale(2, b.points[i+1])), b.points[i])
		d[i] = r3.Scale(float64(n*(n-1)), dd)
	}
	return deCasteljau(d, b.Interval().Clamp(t))
}

// Tangent returns the unit tangent at t. Where the derivative vanishes
// (coinciding control points), the tangent is approximated numerically.
func (b *Bezier) Tangent(t float64) kinema.Vec3 {
	if w := kinema.Unit(b.Derivative(t)); w != kinema.Origin {
		return w
	}
	return kinema.NumericTangent(b, t)
}

// Normal returns the unit normal at t.
func (b *Bezier) Normal(t float64) kinema.Vec3 {
	w := b.Tangent(t)
	a := b.SecondDerivative(t)
	return kinema.Unit(r3.Sub(a, r3.Scale(r3.Dot(a, w), w)))
}

func deCasteljau(points []kinema.Vec3, t float64) kinema.Vec3 {
	tmp := append([]kinema.Vec3(nil), points...)
	for k := len(tmp) - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			tmp[i] = kinema.Lerp(tmp[i], tmp[i+1], t)
		}
	}
	return tmp[0]
}
