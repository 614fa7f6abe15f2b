package curves

import (
	"fmt"
	"math"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/spatial/r3"
)

// Exponents for alpha-parametrized Catmull-Rom grids. Grid spacing is
// (|Δp|²)^α, i.e. Chordal spaces knots by chord length.
const (
	Uniform     = 0.0
	Centripetal = 0.25
	Chordal     = 0.5
)

// CatmullRom is a non-uniform cubic Catmull-Rom curve through a sequence of
// points. Two synthetic points are added at either end. For closed polygons
// (first and last point coincide) they repeat the neighbours of the joint,
// otherwise they mirror the first and last polygon leg.
type CatmullRom struct {
	kinema.Domain
	points []kinema.Vec3 // n+2 points, including the synthetic ones
	grid   []float64     // n+2 parameter values
	closed bool
}

// NewCatmullRom creates a curve passing points[i] at parameter grid[i].
func NewCatmullRom(points []kinema.Vec3, grid []float64) (*CatmullRom, error) {
	if len(points) != len(grid) {
		err := fmt.Errorf("%w: %d points, %d grid values", kinema.ErrLengthMismatch, len(points), len(grid))
		tracer().Errorf("cannot create Catmull-Rom curve: %v", err)
		return nil, err
	}
	if err := kinema.CheckGrid(grid); err != nil {
		tracer().Errorf("cannot create Catmull-Rom curve: %v", err)
		return nil, err
	}
	return buildCatmullRom(points, grid), nil
}

// NewUniformCatmullRom creates a curve passing points[i] at parameter i.
func NewUniformCatmullRom(points []kinema.Vec3) (*CatmullRom, error) {
	return NewCatmullRom(points, kinema.UniformGrid(len(points), 0, float64(len(points)-1)))
}

// NewCatmullRomAlpha creates a curve with grid spacing (|Δp|²)^α, starting at
// parameter 0. See constants Uniform, Centripetal and Chordal.
func NewCatmullRomAlpha(points []kinema.Vec3, alpha float64) (*CatmullRom, error) {
	grid := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		d2 := r3.Norm2(r3.Sub(points[i], points[i-1]))
		grid[i] = grid[i-1] + math.Pow(d2, alpha)
	}
	return NewCatmullRom(points, grid)
}

func buildCatmullRom(points []kinema.Vec3, grid []float64) *CatmullRom {
	n := len(points)
	cr := &CatmullRom{
		points: make([]kinema.Vec3, n+2),
		grid:   make([]float64, n+2),
	}
	copy(cr.points[1:], points)
	copy(cr.grid[1:], grid)
	first, last := points[0], points[n-1]
	cr.closed = n > 2 && r3.Norm2(r3.Sub(first, last)) < kinema.ClosedCurveEpsilon
	if cr.closed {
		cr.points[0], cr.points[n+1] = points[n-2], points[1]
		cr.grid[0] = grid[0] - (grid[n-1] - grid[n-2])
		cr.grid[n+1] = grid[n-1] + (grid[1] - grid[0])
	} else {
		cr.points[0] = r3.Sub(r3.Scale(2, first), points[1])
		cr.points[n+1] = r3.Sub(r3.Scale(2, last), points[n-2])
		cr.grid[0] = grid[0] - (grid[1] - grid[0])
		cr.grid[n+1] = grid[n-1] + (grid[n-1] - grid[n-2])
	}
	cr.Domain = kinema.MakeDomain(kinema.Interval{TMin: grid[0], TMax: grid[n-1]})
	tracer().Debugf("Catmull-Rom curve with %d points, closed = %v", n, cr.closed)
	return cr
}

// IsClosed is a predicate: do the first and last point coincide?
func (cr *CatmullRom) IsClosed() bool {
	return cr.closed
}

// Eval evaluates the curve segment containing t with the pyramidal scheme of
// Barry and Goldman.
func (cr *CatmullRom) Eval(t float64) kinema.Vec3 {
	n := len(cr.points) - 2
	i, w, ok := kinema.Locate(cr.grid[1:n+1], t)
	if !ok {
		tracer().Infof("Catmull-Rom curve evaluated at t=%g outside of %s, clamping", t, cr.Interval())
	}
	p, g := cr.points[i:i+4], cr.grid[i:i+4]
	if w == 0 {
		return p[1]
	} else if w == 1 {
		return p[2]
	}
	t = g[1] + w*(g[2]-g[1])
	a1 := lerpAt(p[0], p[1], g[0], g[1], t)
	a2 := lerpAt(p[1], p[2], g[1], g[2], t)
	a3 := lerpAt(p[2], p[3], g[2], g[3], t)
	b1 := lerpAt(a1, a2, g[0], g[2], t)
	b2 := lerpAt(a2, a3, g[1], g[3], t)
	return lerpAt(b1, b2, g[1], g[2], t)
}

// lerpAt interpolates between a at ta and b at tb, extrapolating outside.
func lerpAt(a, b kinema.Vec3, ta, tb, t float64) kinema.Vec3 {
	return r3.Add(a, r3.Scale((t-ta)/(tb-ta), r3.Sub(b, a)))
}
