package combine

import (
	"fmt"

	"github.com/npillmayer/kinema"
)

// Constant returns v over [t1,t2]. Either bound may be infinite. Constants
// are typically used as fillers between connected pieces.
func Constant[T any](v T, t1, t2 float64) (*kinema.Func[T], error) {
	iv, err := kinema.NewInterval(t1, t2)
	if err != nil {
		tracer().Errorf("cannot create constant: %v", err)
		return nil, err
	}
	return kinema.NewFunc(iv, func(float64) T { return v }), nil
}

// Restrict narrows the domain of f to [t1,t2], which has to lie within f's
// interval.
func Restrict[T any](f kinema.Function[T], t1, t2 float64) (kinema.Function[T], error) {
	iv, err := subInterval("restrict", f, t1, t2)
	if err != nil {
		return nil, err
	}
	return kinema.NewFunc(iv, f.Eval), nil
}

// Shift translates the values of f by offset, over [t1,t2] within f's
// interval.
func Shift[T kinema.Value](f kinema.Function[T], offset T, t1, t2 float64) (kinema.Function[T], error) {
	iv, err := subInterval("shift", f, t1, t2)
	if err != nil {
		return nil, err
	}
	return kinema.NewFunc(iv, func(t float64) T {
		return kinema.Add(f.Eval(t), offset)
	}), nil
}

// Rescale maps [t1,t2] linearly onto the (bounded) interval of f, i.e. it
// stretches or compresses f in time.
func Rescale[T any](f kinema.Function[T], t1, t2 float64) (kinema.Function[T], error) {
	if f == nil {
		return nil, kinema.ErrNilFunction
	}
	iv, err := kinema.NewInterval(t1, t2)
	if err != nil {
		tracer().Errorf("cannot rescale: %v", err)
		return nil, err
	}
	src := f.Interval()
	if !src.IsBounded() || !iv.IsBounded() {
		err := fmt.Errorf("%w: cannot rescale %s to %s", kinema.ErrDomainMismatch, src, iv)
		tracer().Errorf("%v", err)
		return nil, err
	}
	factor := src.Duration() / iv.Duration()
	return kinema.NewFunc(iv, func(t float64) T {
		return f.Eval(src.TMin + (t-iv.TMin)*factor)
	}), nil
}

func subInterval[T any](op string, f kinema.Function[T], t1, t2 float64) (kinema.Interval, error) {
	if f == nil {
		return kinema.Interval{}, kinema.ErrNilFunction
	}
	iv, err := kinema.NewInterval(t1, t2)
	if err != nil {
		tracer().Errorf("cannot %s: %v", op, err)
		return iv, err
	}
	if !f.Interval().Covers(iv) {
		err = fmt.Errorf("%w: %s is not within %s", kinema.ErrDomainMismatch, iv, f.Interval())
		tracer().Errorf("cannot %s: %v", op, err)
		return iv, err
	}
	return iv, nil
}
