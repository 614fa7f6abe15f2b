package kinema

// Function is a function of one real parameter over an interval. Eval must be
// defined for every t within Interval(); behaviour outside is up to the
// concrete type. Eval returns fresh values and never aliases internal state,
// so functions may be shared between combinators and controllers.
type Function[T any] interface {
	Interval() Interval
	Eval(t float64) T
}

// RealFunction maps time to a scalar.
type RealFunction = Function[float64]

// VectorFunction maps time to a point in 3-space.
type VectorFunction = Function[Vec3]

// Vector4Function maps time to a 4-vector.
type Vector4Function = Function[Vec4]

// QuatFunction maps time to an orientation, represented as a unit quaternion.
type QuatFunction = Function[Quat]

// Differentiable is implemented by vector functions knowing their own
// derivatives. Tangent returns the unit first derivative, Normal the unit
// component of the second derivative orthogonal to the tangent.
type Differentiable interface {
	Tangent(t float64) Vec3
	Normal(t float64) Vec3
}

// Domain holds the interval of a function. Concrete functions embed it.
type Domain struct {
	iv Interval
}

// MakeDomain creates a domain from an interval.
func MakeDomain(iv Interval) Domain {
	return Domain{iv: iv}
}

// Interval returns the domain interval.
func (d Domain) Interval() Interval {
	return d.iv
}

// SetTMin narrows or extends the domain at its lower end.
func (d *Domain) SetTMin(tmin float64) {
	d.iv.TMin = tmin
}

// SetTMax narrows or extends the domain at its upper end.
func (d *Domain) SetTMax(tmax float64) {
	d.iv.TMax = tmax
}

// Func adapts a plain Go function to a Function over a fixed interval.
type Func[T any] struct {
	Domain
	F func(t float64) T
}

// NewFunc creates a function from a closure f, valid over iv.
func NewFunc[T any](iv Interval, f func(t float64) T) *Func[T] {
	return &Func[T]{Domain: MakeDomain(iv), F: f}
}

// Eval calls the wrapped closure.
func (f *Func[T]) Eval(t float64) T {
	return f.F(t)
}

// ClampWarn clamps t into iv. Clamping is traced, but is not an error:
// out-of-range queries routinely arise from floating point effects at
// segment boundaries.
func ClampWarn(iv Interval, kind string, t float64) float64 {
	if iv.Contains(t) {
		return t
	}
	tracer().Infof("%s evaluated at t=%g outside of %s, clamping", kind, t, iv)
	return iv.Clamp(t)
}
