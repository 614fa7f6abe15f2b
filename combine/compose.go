package combine

import (
	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/spatial/r3"
)

// Composition is the function t ↦ f(p(t)), over the domain of p.
type Composition[T any] struct {
	f kinema.Function[T]
	p kinema.RealFunction
}

// Compose reparametrizes f by p. Typical reparametrizations are affine time
// maps (delays, speed-ups), easing functions and arc length maps. Compose
// panics if f or p is nil.
func Compose[T any](f kinema.Function[T], p kinema.RealFunction) *Composition[T] {
	if f == nil || p == nil {
		panic(kinema.ErrNilFunction)
	}
	return &Composition[T]{f: f, p: p}
}

// Interval is the domain of the reparametrization.
func (c *Composition[T]) Interval() kinema.Interval {
	return c.p.Interval()
}

// Eval returns f(p(t)).
func (c *Composition[T]) Eval(t float64) T {
	return c.f.Eval(c.p.Eval(t))
}

// VecComposition is a composition of vector functions. Its tangent and
// normal are taken from f at p(t), without the chain rule factor p'(t). With
// ChainRule set, the sign of p'(t) is applied, i.e. the tangent flips where
// p runs backwards.
type VecComposition struct {
	Composition[kinema.Vec3]
	chainRule bool
}

// ComposeVec reparametrizes a vector function f by p.
func ComposeVec(f kinema.VectorFunction, p kinema.RealFunction) *VecComposition {
	return &VecComposition{Composition: *Compose(f, p)}
}

// ChainRule switches the orientation correction of tangents. Part of builder
// functionality.
func (c *VecComposition) ChainRule(on bool) *VecComposition {
	c.chainRule = on
	return c
}

// Tangent is f's unit tangent at p(t).
func (c *VecComposition) Tangent(t float64) kinema.Vec3 {
	w := kinema.Tangent(c.f, c.p.Eval(t))
	if c.chainRule && slope(c.p, t) < 0 {
		return r3.Scale(-1, w)
	}
	return w
}

// Normal is f's unit normal at p(t). The normal of a curve does not depend
// on the direction it is traversed in.
func (c *VecComposition) Normal(t float64) kinema.Vec3 {
	return kinema.Normal(c.f, c.p.Eval(t))
}

// slope approximates p'(t) by finite differences within p's domain.
func slope(p kinema.RealFunction, t float64) float64 {
	iv, h := p.Interval(), kinema.TangentStep
	t0, t1 := iv.Clamp(t-h), iv.Clamp(t+h)
	if t1 <= t0 {
		return 0
	}
	return (p.Eval(t1) - p.Eval(t0)) / (t1 - t0)
}
