package arclength

import (
	"fmt"

	"github.com/npillmayer/kinema"
	"github.com/npillmayer/kinema/combine"
	"github.com/npillmayer/kinema/curves"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Reparametrization holds a curve f together with its arc length
// parametrized version f ∘ trafo, where trafo maps arc length to the
// parameter of f.
type Reparametrization struct {
	f       kinema.VectorFunction
	trafo   *curves.Linear[float64] // arc length → parameter of f
	curve   *combine.VecComposition
	lengths []float64 // accumulated chord length at each sample
	tmax    float64   // last sampled parameter
	last    kinema.Vec3
}

// Reparametrize samples f at n evenly spaced parameters over its (bounded)
// interval and builds the arc length parametrization. Samples without
// progress, i.e. zero-length chords, are collapsed. A curve which does not
// move at all cannot be reparametrized.
func Reparametrize(f kinema.VectorFunction, n int) (*Reparametrization, error) {
	if f == nil {
		return nil, kinema.ErrNilFunction
	}
	iv := f.Interval()
	if !iv.IsBounded() {
		err := fmt.Errorf("%w: arc length of %s needs a bounded interval", kinema.ErrDomainMismatch, iv)
		tracer().Errorf("%v", err)
		return nil, err
	}
	if n < 2 {
		err := fmt.Errorf("%w: need at least 2 samples, got %d", kinema.ErrTooFewPoints, n)
		tracer().Errorf("%v", err)
		return nil, err
	}
	ts := floats.Span(make([]float64, n), iv.TMin, iv.TMax)
	lengths, pts := sample(f, ts, 0, f.Eval(iv.TMin))
	params, grid := collapse(ts, lengths)
	if len(grid) < 2 {
		err := fmt.Errorf("%w: curve does not move over %s", kinema.ErrDegenerateGeometry, iv)
		tracer().Errorf("%v", err)
		return nil, err
	}
	trafo, err := curves.NewLinear(params, grid)
	if err != nil {
		return nil, err
	}
	r := &Reparametrization{
		f:       f,
		trafo:   trafo,
		curve:   combine.ComposeVec(f, trafo),
		lengths: lengths,
		tmax:    iv.TMax,
		last:    pts[len(pts)-1],
	}
	tracer().Debugf("arc length of curve over %s is %g (%d samples)", iv, r.ArcLength(), n)
	return r, nil
}

// sample evaluates f at ts and accumulates chord lengths, starting with
// length s0 at point p0.
func sample(f kinema.VectorFunction, ts []float64, s0 float64, p0 kinema.Vec3) ([]float64, []kinema.Vec3) {
	pts := make([]kinema.Vec3, len(ts))
	chords := make([]float64, len(ts))
	prev := p0
	for i, t := range ts {
		pts[i] = f.Eval(t)
		chords[i] = r3.Norm(r3.Sub(pts[i], prev))
		prev = pts[i]
	}
	chords[0] += s0
	return floats.CumSum(make([]float64, len(ts)), chords), pts
}

// collapse drops samples whose accumulated length did not grow, keeping
// the first parameter for each length.
func collapse(ts, lengths []float64) (params, grid []float64) {
	for i, s := range lengths {
		if len(grid) > 0 && s <= grid[len(grid)-1] {
			continue
		}
		params = append(params, ts[i])
		grid = append(grid, s)
	}
	return params, grid
}

// Curve is the arc length parametrized curve over [0, ArcLength()].
func (r *Reparametrization) Curve() *combine.VecComposition {
	return r.curve
}

// Trafo maps arc length to the parameter of the original curve.
func (r *Reparametrization) Trafo() *curves.Linear[float64] {
	return r.trafo
}

// ArcLength is the total (approximated) length of the curve.
func (r *Reparametrization) ArcLength() float64 {
	return r.trafo.Interval().TMax
}

// ArcLengths returns the accumulated chord lengths at the samples. It is
// non-decreasing and includes the samples dropped for zero-length chords.
func (r *Reparametrization) ArcLengths() []float64 {
	return append([]float64(nil), r.lengths...)
}

// Extend continues the parametrization of a growing curve up to parameter
// tmax, with n additional samples. The original curve has to cover tmax,
// e.g. after appending points to a polygon.
func (r *Reparametrization) Extend(tmax float64, n int) error {
	if !(tmax > r.tmax) {
		return fmt.Errorf("%w: cannot extend from %g to %g", kinema.ErrGridNotIncreasing, r.tmax, tmax)
	}
	if n < 1 {
		return fmt.Errorf("%w: need at least 1 sample, got %d", kinema.ErrTooFewPoints, n)
	}
	if !r.f.Interval().Contains(tmax) {
		err := fmt.Errorf("%w: curve over %s does not reach %g", kinema.ErrDomainMismatch, r.f.Interval(), tmax)
		tracer().Errorf("%v", err)
		return err
	}
	ts := floats.Span(make([]float64, n+1), r.tmax, tmax)[1:]
	s0 := r.lengths[len(r.lengths)-1]
	lengths, pts := sample(r.f, ts, s0, r.last)
	for i, s := range lengths {
		if s > r.ArcLength() {
			if err := r.trafo.Append(ts[i], s); err != nil {
				return err
			}
		}
	}
	r.lengths = append(r.lengths, lengths...)
	r.tmax, r.last = tmax, pts[len(pts)-1]
	tracer().Debugf("extended arc length parametrization to %g, length %g", tmax, r.ArcLength())
	return nil
}
