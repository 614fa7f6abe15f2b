package curves

import (
	"fmt"
	"math"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/spatial/r3"
)

// Circle is a circular motion in the plane spanned by the unit vectors U
// and V around Center:
//
//	c(t) = Center + Radius·(cos θ·U + sin θ·V),   θ = Omega·t + Phase
//
// Circles are defined for all t.
type Circle struct {
	Center kinema.Vec3
	Radius float64
	U, V   kinema.Vec3
	Omega  float64 // angular speed, radians per time unit
	Phase  float64 // angle at t = 0
}

// NewCircle creates a circle in the plane of u and v, which are normalized.
// The plane axes should be perpendicular to each other.
func NewCircle(center kinema.Vec3, radius float64, u, v kinema.Vec3, omega float64) (*Circle, error) {
	u, v = kinema.Unit(u), kinema.Unit(v)
	if u == kinema.Origin || v == kinema.Origin {
		return nil, fmt.Errorf("%w: circle plane axes must not be zero", kinema.ErrDegenerateGeometry)
	}
	return &Circle{Center: center, Radius: radius, U: u, V: v, Omega: omega}, nil
}

// NewGroundCircle creates a circle parallel to the ground plane (x-z).
func NewGroundCircle(center kinema.Vec3, radius, omega float64) *Circle {
	return &Circle{Center: center, Radius: radius, U: kinema.V3(1, 0, 0), V: kinema.V3(0, 0, 1), Omega: omega}
}

// Interval is unbounded.
func (c *Circle) Interval() kinema.Interval {
	return kinema.Unbounded()
}

func (c *Circle) angle(t float64) (float64, float64) {
	return math.Sincos(c.Omega*t + c.Phase)
}

// Eval returns the position at t.
func (c *Circle) Eval(t float64) kinema.Vec3 {
	sin, cos := c.angle(t)
	p := r3.Add(r3.Scale(cos, c.U), r3.Scale(sin, c.V))
	return r3.Add(c.Center, r3.Scale(c.Radius, p))
}

// Derivative returns the velocity at t.
func (c *Circle) Derivative(t float64) kinema.Vec3 {
	sin, cos := c.angle(t)
	d := r3.Add(r3.Scale(-sin, c.U), r3.Scale(cos, c.V))
	return r3.Scale(c.Radius*c.Omega, d)
}

// SecondDerivative returns the acceleration at t.
func (c *Circle) SecondDerivative(t float64) kinema.Vec3 {
	sin, cos := c.angle(t)
	d := r3.Add(r3.Scale(cos, c.U), r3.Scale(sin, c.V))
	return r3.Scale(-c.Radius*c.Omega*c.Omega, d)
}

// Tangent returns the unit direction of motion, or zero for Omega = 0.
func (c *Circle) Tangent(t float64) kinema.Vec3 {
	return kinema.Unit(c.Derivative(t))
}

// Normal points to the center of the circle.
func (c *Circle) Normal(t float64) kinema.Vec3 {
	return kinema.Unit(c.SecondDerivative(t))
}

// Helix is a circle moving along a constant velocity Rise:
//
//	h(t) = circle(t) + t·Rise
type Helix struct {
	Circle
	Rise kinema.Vec3
}

// NewHelix creates a helix winding around an axis along rise.
func NewHelix(c *Circle, rise kinema.Vec3) *Helix {
	return &Helix{Circle: *c, Rise: rise}
}

// Eval returns the position at t.
func (h *Helix) Eval(t float64) kinema.Vec3 {
	return r3.Add(h.Circle.Eval(t), r3.Scale(t, h.Rise))
}

// Derivative returns the velocity at t.
func (h *Helix) Derivative(t float64) kinema.Vec3 {
	return r3.Add(h.Circle.Derivative(t), h.Rise)
}

// Tangent returns the unit direction of motion.
func (h *Helix) Tangent(t float64) kinema.Vec3 {
	return kinema.Unit(h.Derivative(t))
}

// Normal returns the unit normal at t.
func (h *Helix) Normal(t float64) kinema.Vec3 {
	w := h.Tangent(t)
	a := h.Circle.SecondDerivative(t)
	return kinema.Unit(r3.Sub(a, r3.Scale(r3.Dot(a, w), w)))
}

// --- Scalar functions ------------------------------------------------------

// Sine is the scalar function Amplitude·sin(Omega·t + Phase) + Offset.
type Sine struct {
	Amplitude, Omega, Phase, Offset float64
}

// Interval is unbounded.
func (s Sine) Interval() kinema.Interval { return kinema.Unbounded() }

// Eval returns the function value at t.
func (s Sine) Eval(t float64) float64 {
	return s.Amplitude*math.Sin(s.Omega*t+s.Phase) + s.Offset
}

// Sawtooth rises linearly from 0 to Amplitude within each period, then
// drops back to 0.
type Sawtooth struct {
	Amplitude, Period, Phase float64
}

// NewSawtooth creates a sawtooth function. The period must be positive.
func NewSawtooth(amplitude, period float64) (Sawtooth, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return Sawtooth{}, fmt.Errorf("%w: sawtooth period %g", kinema.ErrDegenerateInterval, period)
	}
	return Sawtooth{Amplitude: amplitude, Period: period}, nil
}

// Interval is unbounded.
func (s Sawtooth) Interval() kinema.Interval { return kinema.Unbounded() }

// Eval returns the function value at t.
func (s Sawtooth) Eval(t float64) float64 {
	x := (t + s.Phase) / s.Period
	return s.Amplitude * (x - math.Floor(x))
}

// Gaussian is the density of the normal distribution with mean Mu and
// standard deviation Sigma.
type Gaussian struct {
	Mu, Sigma float64
}

// NewGaussian creates a normal density. Sigma must be positive.
func NewGaussian(mu, sigma float64) (Gaussian, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return Gaussian{}, fmt.Errorf("%w: standard deviation %g", kinema.ErrDegenerateInterval, sigma)
	}
	return Gaussian{Mu: mu, Sigma: sigma}, nil
}

// Interval is unbounded.
func (g Gaussian) Interval() kinema.Interval { return kinema.Unbounded() }

// Eval returns the function value at t.
func (g Gaussian) Eval(t float64) float64 {
	z := (t - g.Mu) / g.Sigma
	return math.Exp(-z*z/2) / (g.Sigma * math.Sqrt(2*math.Pi))
}

// Affine is the scalar function A·t + B. It is the usual time
// reparametrization for composition: delays, speed-ups and reversals.
type Affine struct {
	A, B float64
}

// Interval is unbounded.
func (a Affine) Interval() kinema.Interval { return kinema.Unbounded() }

// Eval returns A·t + B.
func (a Affine) Eval(t float64) float64 {
	return a.A*t + a.B
}
