package combine

import (
	"fmt"

	"github.com/npillmayer/kinema"
	"github.com/npillmayer/kinema/curves"
)

// Blending cross-fades linearly from f1 to f2 over its interval.
type Blending[T kinema.Value] struct {
	kinema.Domain
	f1, f2 kinema.Function[T]
}

// Blend cross-fades from f1 at t1 to f2 at t2:
//
//	blend(t) = (1-w)·f1(t) + w·f2(t),   w = (t-t1) / (t2-t1)
//
// Both functions have to be defined on [t1,t2].
func Blend[T kinema.Value](f1, f2 kinema.Function[T], t1, t2 float64) (*Blending[T], error) {
	if f1 == nil || f2 == nil {
		return nil, kinema.ErrNilFunction
	}
	iv, err := kinema.NewInterval(t1, t2)
	if err != nil {
		tracer().Errorf("cannot blend: %v", err)
		return nil, err
	}
	if !iv.IsBounded() || !f1.Interval().Covers(iv) || !f2.Interval().Covers(iv) {
		err = fmt.Errorf("%w: blend over %s needs %s and %s to cover it",
			kinema.ErrDomainMismatch, iv, f1.Interval(), f2.Interval())
		tracer().Errorf("%v", err)
		return nil, err
	}
	return &Blending[T]{Domain: kinema.MakeDomain(iv), f1: f1, f2: f2}, nil
}

// Eval mixes f1(t) and f2(t). Outside the interval, the weight saturates.
func (b *Blending[T]) Eval(t float64) T {
	iv := b.Interval()
	w := kinema.Clamp01((t - iv.TMin) / iv.Duration())
	return kinema.Lerp(b.f1.Eval(t), b.f2.Eval(t), w)
}

// Transition moves linearly from value a at t1 to value b at t2.
func Transition[T kinema.Value](a, b T, t1, t2 float64) (kinema.Function[T], error) {
	if _, err := kinema.NewInterval(t1, t2); err != nil {
		tracer().Errorf("cannot create transition: %v", err)
		return nil, err
	}
	lin, err := curves.NewLinear([]T{a, b}, []float64{t1, t2})
	if err != nil {
		return nil, err
	}
	return lin, nil
}

// Combine joins f1 and f2 into one function, depending on how their
// intervals relate:
//
//   - f1 ends where f2 starts: the functions are connected.
//   - f1 ends before f2 starts: the gap is filled with a transition from
//     f1's last value to f2's first value.
//   - the intervals overlap: f1 is cross-faded to f2 within the overlap.
//
// f2 has to start after f1 starts and has to end after f1 ends.
func Combine[T kinema.Value](f1, f2 kinema.Function[T]) (kinema.Function[T], error) {
	if f1 == nil || f2 == nil {
		return nil, kinema.ErrNilFunction
	}
	iv1, iv2 := f1.Interval(), f2.Interval()
	if !(iv1.TMin < iv2.TMin && iv1.TMax < iv2.TMax) || !kinema.IsFinite(iv1.TMax) || !kinema.IsFinite(iv2.TMin) {
		err := fmt.Errorf("%w: cannot combine %s with %s", kinema.ErrDomainMismatch, iv1, iv2)
		tracer().Errorf("%v", err)
		return nil, err
	}
	switch {
	case kinema.Is0(iv2.TMin - iv1.TMax):
		tracer().Debugf("combine %s and %s by connecting", iv1, iv2)
		return connect[T](f1, f2)
	case iv1.TMax < iv2.TMin:
		tracer().Debugf("combine %s and %s with a transition", iv1, iv2)
		tr, err := Transition(f1.Eval(iv1.TMax), f2.Eval(iv2.TMin), iv1.TMax, iv2.TMin)
		if err != nil {
			return nil, err
		}
		return connect[T](f1, tr, f2)
	}
	tracer().Debugf("combine %s and %s by blending", iv1, iv2)
	head, err := Restrict(f1, iv1.TMin, iv2.TMin)
	if err != nil {
		return nil, err
	}
	overlap, err := Blend(f1, f2, iv2.TMin, iv1.TMax)
	if err != nil {
		return nil, err
	}
	tail, err := Restrict(f2, iv1.TMax, iv2.TMax)
	if err != nil {
		return nil, err
	}
	return connect[T](head, overlap, tail)
}

// connect is Connect, returning a clean nil interface on errors.
func connect[T any](pieces ...kinema.Function[T]) (kinema.Function[T], error) {
	c, err := Connect(pieces...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CombineShift is like Combine, but first translates f2 so that it starts
// with the last value of f1. Motion clips recorded at different origins may
// thus be concatenated without visible jumps.
func CombineShift[T kinema.Value](f1, f2 kinema.Function[T]) (kinema.Function[T], error) {
	if f1 == nil || f2 == nil {
		return nil, kinema.ErrNilFunction
	}
	iv1, iv2 := f1.Interval(), f2.Interval()
	offset := kinema.Sub(f1.Eval(iv1.TMax), f2.Eval(iv2.TMin))
	shifted, err := Shift(f2, offset, iv2.TMin, iv2.TMax)
	if err != nil {
		return nil, err
	}
	return Combine(f1, shifted)
}
