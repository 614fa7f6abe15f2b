package curves

import (
	"fmt"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/mat"
)

// CubicSpline is a natural cubic spline through scalar values over a
// strictly increasing grid: twice continuously differentiable, with
// vanishing second derivative at both ends. Compared to PiecewiseLinear it
// gives smooth easing between keyframe values.
type CubicSpline struct {
	kinema.Domain
	values []float64
	grid   []float64
	m      []float64 // second derivatives at the grid nodes
}

// NewCubicSpline creates a natural cubic spline passing values[i] at grid[i].
func NewCubicSpline(values, grid []float64) (*CubicSpline, error) {
	if len(values) != len(grid) {
		err := fmt.Errorf("%w: %d values, %d grid values", kinema.ErrLengthMismatch, len(values), len(grid))
		tracer().Errorf("cannot create cubic spline: %v", err)
		return nil, err
	}
	if err := kinema.CheckGrid(grid); err != nil {
		tracer().Errorf("cannot create cubic spline: %v", err)
		return nil, err
	}
	sp := &CubicSpline{
		Domain: kinema.MakeDomain(kinema.Interval{TMin: grid[0], TMax: grid[len(grid)-1]}),
		values: append([]float64(nil), values...),
		grid:   append([]float64(nil), grid...),
		m:      make([]float64, len(grid)),
	}
	if err := sp.solve(); err != nil {
		tracer().Errorf("cannot create cubic spline: %v", err)
		return nil, err
	}
	return sp, nil
}

// solve sets up the tridiagonal system for the inner second derivatives
//
//	h[i-1]·m[i-1] + 2(h[i-1]+h[i])·m[i] + h[i]·m[i+1] = 6(Δ[i] - Δ[i-1])
//
// with slopes Δ[i] = (y[i+1]-y[i]) / h[i] and m[0] = m[n-1] = 0.
func (sp *CubicSpline) solve() error {
	n := len(sp.grid)
	inner := n - 2
	if inner == 0 {
		return nil
	}
	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := range h {
		h[i] = sp.grid[i+1] - sp.grid[i]
		slope[i] = (sp.values[i+1] - sp.values[i]) / h[i]
	}
	a := mat.NewDense(inner, inner, nil)
	b := mat.NewVecDense(inner, nil)
	for r := 0; r < inner; r++ {
		i := r + 1
		if r > 0 {
			a.Set(r, r-1, h[i-1])
		}
		a.Set(r, r, 2*(h[i-1]+h[i]))
		if r < inner-1 {
			a.Set(r, r+1, h[i])
		}
		b.SetVec(r, 6*(slope[i]-slope[i-1]))
	}
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return fmt.Errorf("%w: %v", kinema.ErrDegenerateGeometry, err)
	}
	for r := 0; r < inner; r++ {
		sp.m[r+1] = x.AtVec(r)
	}
	tracer().Debugf("cubic spline second derivatives = %v", sp.m)
	return nil
}

// Eval returns the spline value at t.
func (sp *CubicSpline) Eval(t float64) float64 {
	i, w, ok := kinema.Locate(sp.grid, t)
	if !ok {
		tracer().Infof("cubic spline evaluated at t=%g outside of %s, clamping", t, sp.Interval())
	}
	h := sp.grid[i+1] - sp.grid[i]
	l, r := h*w, h*(1-w) // distances from the left and right node
	return sp.m[i]*r*r*r/(6*h) + sp.m[i+1]*l*l*l/(6*h) +
		(sp.values[i]/h-sp.m[i]*h/6)*r + (sp.values[i+1]/h-sp.m[i+1]*h/6)*l
}
