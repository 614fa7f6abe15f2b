package curves

import (
	"fmt"

	"github.com/npillmayer/kinema"
)

// Linear interpolates linearly between control values over a strictly
// increasing parameter grid. For scalar values it is a piecewise linear
// function, for points in 3-space a polygon.
//
// Parameters outside the grid are clamped to the first or last control
// value, with a diagnostic trace.
type Linear[T kinema.Value] struct {
	kinema.Domain
	kind   string
	points []T
	grid   []float64
}

// NewLinear creates a linear interpolant through points, where points[i] is
// reached at parameter grid[i].
func NewLinear[T kinema.Value](points []T, grid []float64) (*Linear[T], error) {
	return newLinear("Linear", points, grid)
}

// NewPiecewiseLinear creates a scalar function, linearly interpolating
// values over grid.
func NewPiecewiseLinear(values, grid []float64) (*Linear[float64], error) {
	return newLinear("PiecewiseLinear", values, grid)
}

// NewPolygon creates a polygon through points, where points[i] is reached
// at parameter grid[i].
func NewPolygon(points []kinema.Vec3, grid []float64) (*Linear[kinema.Vec3], error) {
	return newLinear("Polygon", points, grid)
}

// NewUniformPolygon creates a polygon through points, reaching them at
// evenly spaced parameters between tmin and tmax.
func NewUniformPolygon(points []kinema.Vec3, tmin, tmax float64) (*Linear[kinema.Vec3], error) {
	if _, err := kinema.NewInterval(tmin, tmax); err != nil {
		return nil, err
	}
	return newLinear("Polygon", points, kinema.UniformGrid(len(points), tmin, tmax))
}

func newLinear[T kinema.Value](kind string, points []T, grid []float64) (*Linear[T], error) {
	if len(points) != len(grid) {
		err := fmt.Errorf("%w: %d points, %d grid values", kinema.ErrLengthMismatch, len(points), len(grid))
		tracer().Errorf("cannot create %s: %v", kind, err)
		return nil, err
	}
	if err := kinema.CheckGrid(grid); err != nil {
		tracer().Errorf("cannot create %s: %v", kind, err)
		return nil, err
	}
	lin := &Linear[T]{
		kind:   kind,
		points: append([]T(nil), points...),
		grid:   append([]float64(nil), grid...),
	}
	lin.Domain = kinema.MakeDomain(kinema.Interval{TMin: grid[0], TMax: grid[len(grid)-1]})
	return lin, nil
}

// Eval returns the interpolated value at t.
func (lin *Linear[T]) Eval(t float64) T {
	i, w, ok := kinema.Locate(lin.grid, t)
	if !ok {
		tracer().Infof("%s evaluated at t=%g outside of [%g,%g], clamping", lin.kind, t,
			lin.grid[0], lin.grid[len(lin.grid)-1])
	}
	return kinema.Lerp(lin.points[i], lin.points[i+1], w)
}

// Append extends the interpolant by a new control value p at parameter t,
// which has to be beyond the current last grid value. The upper bound of the
// interval moves to t.
func (lin *Linear[T]) Append(p T, t float64) error {
	last := lin.grid[len(lin.grid)-1]
	if !kinema.IsFinite(t) || t <= last {
		return fmt.Errorf("%w: cannot append t=%g after %g", kinema.ErrGridNotIncreasing, t, last)
	}
	lin.points = append(lin.points, p)
	lin.grid = append(lin.grid, t)
	lin.SetTMax(t)
	return nil
}

// N returns the number of control values.
func (lin *Linear[T]) N() int {
	return len(lin.points)
}

// Points returns a copy of the control values.
func (lin *Linear[T]) Points() []T {
	return append([]T(nil), lin.points...)
}

// Grid returns a copy of the parameter grid.
func (lin *Linear[T]) Grid() []float64 {
	return append([]float64(nil), lin.grid...)
}
