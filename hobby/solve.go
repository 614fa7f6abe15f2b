package hobby

import (
	"fmt"
	"math"
	"math/cmplx"
)

const _epsilon = 0.0000001

// Validate checks if a path is solvable by Hobby interpolation.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if path.IsCycle() {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrTooFewKnots, n)
		}
		if cmplx.Abs((path.points[0] - path.points[n-1]).C()) <= _epsilon {
			return ErrCycleHasDuplicateTerminalKnot
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i, z := range path.points {
		if cmplx.IsNaN(z.C()) || cmplx.IsInf(z.C()) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < path.joins(); i++ {
		if cmplx.Abs((path.Z(i+1) - path.Z(i)).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, (i+1)%n)
		}
	}
	return nil
}

// joins is the count of curve segments between knots.
func (path *Path) joins() int {
	if path.IsCycle() {
		return path.N()
	}
	return path.N() - 1
}

// Solve finds the control points of the Hobby spline through the knots of
// path. It validates the path and returns an error for empty or invalid
// geometry.
func Solve(path *Path) (*Controls, error) {
	if err := path.Validate(); err != nil {
		tracer().Errorf("cannot solve path: %v", err)
		return nil, err
	}
	controls := &Controls{}
	for _, sp := range split(path) {
		tracer().Debugf("find controls for span %s", sp)
		solveSpan(sp, controls)
	}
	tracer().Infof("solved path %s", AsString(path, controls))
	return controls, nil
}

// MustSolve is like Solve, but panics on invalid paths.
func MustSolve(path *Path) *Controls {
	c, err := Solve(path)
	if err != nil {
		panic(err)
	}
	return c
}

// Segments returns the cubic Bézier control quadruples of a solved path,
// one per join: knot, post-control, pre-control of the next knot, next knot.
func Segments(path *Path, controls *Controls) [][4]Pair {
	n := path.N()
	segs := make([][4]Pair, path.joins())
	for i := range segs {
		j := (i + 1) % n
		segs[i] = [4]Pair{path.Z(i), controls.PostControl(i), controls.PreControl(j), path.Z(j)}
	}
	return segs
}

// --- Spans -----------------------------------------------------------------

// A span is a run of knots without discontinuities, solved as a unit.
type span struct {
	whole      *Path
	start, end int // knot indices within the whole path
}

func (sp *span) IsCycle() bool {
	return sp.whole.IsCycle() && sp.whole.N() == sp.N()
}

func (sp *span) N() int {
	return sp.end - sp.start + 1
}

func (sp *span) pmap(i int) int {
	return i%sp.N() + sp.start
}

func (sp *span) Z(i int) Pair {
	if sp.IsCycle() {
		return sp.whole.Z(i)
	}
	return sp.whole.Z(sp.pmap(i))
}

func (sp *span) PreDir(i int) Pair         { return sp.whole.PreDir(sp.pmap(i)) }
func (sp *span) PostDir(i int) Pair        { return sp.whole.PostDir(sp.pmap(i)) }
func (sp *span) PreCurl(i int) float64     { return sp.whole.PreCurl(sp.pmap(i)) }
func (sp *span) PostCurl(i int) float64    { return sp.whole.PostCurl(sp.pmap(i)) }
func (sp *span) PreTension(i int) float64  { return sp.whole.PreTension(sp.pmap(i)) }
func (sp *span) PostTension(i int) float64 { return sp.whole.PostTension(sp.pmap(i)) }

func (sp *span) delta(i int) Pair {
	return sp.Z(i+1) - sp.Z(i)
}

func (sp *span) d(i int) float64 {
	return cmplx.Abs(sp.delta(i).C())
}

// Turning angle at z.i.
func (sp *span) psi(i int) float64 {
	psi := 0.0
	if sp.IsCycle() || (i > 0 && i < sp.N()-1) {
		psi = cmplx.Phase(sp.delta(i).C()) - cmplx.Phase(sp.delta(i-1).C())
	}
	return reduceAngle(psi)
}

func (sp *span) String() string {
	return fmt.Sprintf("%d..%d of %d knots", sp.start, sp.end, sp.whole.N())
}

// split breaks a path into spans at "rough" knots, i.e. knots with
// parameters creating a discontinuity.
func split(path *Path) []*span {
	var spans []*span
	at := 0
	for i := 1; i < path.N(); i++ {
		if isRough(path, i) {
			spans = append(spans, &span{whole: path, start: at, end: i})
			at = i
		}
	}
	if path.IsCycle() {
		if len(spans) == 0 {
			spans = append(spans, &span{whole: path, start: 0, end: path.N() - 1})
		} else {
			spans = append(spans, &span{whole: path, start: at, end: path.N()})
		}
	} else if at != path.N()-1 {
		spans = append(spans, &span{whole: path, start: at, end: path.N() - 1})
	}
	return spans
}

// Is a knot a breakpoint for splitting a path into spans?
func isRough(path *Path, i int) bool {
	lc, rc := path.PreCurl(i), path.PostCurl(i)
	ld, rd := path.PreDir(i), path.PostDir(i)
	has2dirs := !cmplx.IsNaN(ld.C()) && !cmplx.IsNaN(rd.C()) && !sameDirection(ld, rd)
	return lc != 1 || rc != 1 || has2dirs
}

// --- Equations -------------------------------------------------------------

// solveSpan finds the turning angles θ at the knots of a span by solving
// Hobby's tridiagonal system, then places the control points.
func solveSpan(sp *span, controls *Controls) {
	n := sp.N() + 2
	theta, u, v := make([]float64, n), make([]float64, n), make([]float64, n)
	if sp.IsCycle() {
		w := make([]float64, n)
		u[0], v[0], w[0] = 0, 0, 1
		buildEqs(sp, u, v, w)
		endCycle(sp, theta, u, v, w)
	} else {
		startOpen(sp, u, v)
		buildEqs(sp, u, v, nil)
		endOpen(sp, theta, u, v)
	}
	setControls(sp, theta, controls)
}

func startOpen(sp *span, u, v []float64) {
	if cmplx.IsNaN(sp.PostDir(0).C()) {
		a := recip(sp.PostTension(0))
		b := recip(sp.PreTension(1))
		c := square(a) * sp.PostCurl(0) / square(b)
		u[0] = ((3-a)*c + b) / (a*c + 3 - b)
		v[0] = -u[0] * sp.psi(1)
	} else {
		u[0] = 0
		v[0] = reduceAngle(angle(sp.PostDir(0)) - angle(sp.delta(0)))
	}
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

func endOpen(sp *span, theta, u, v []float64) {
	last := sp.N() - 1
	if cmplx.IsNaN(sp.PreDir(last).C()) {
		a := recip(sp.PostTension(last - 1))
		b := recip(sp.PreTension(last))
		c := square(b) * sp.PreCurl(last) / square(a)
		u[last] = (b*c + 3 - a) / ((3-b)*c + a)
		if den := u[last-1] - u[last]; math.Abs(den) > _epsilon {
			theta[last] = v[last-1] / den
		} // else a curl-to-curl straight join, θ = 0
	} else {
		theta[last] = reduceAngle(angle(sp.PreDir(last)) - angle(sp.delta(last-1)))
	}
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func endCycle(sp *span, theta, u, v, w []float64) {
	n := sp.N()
	var a, b float64 = 0, 1
	for i := n; i > 0; i-- {
		a = v[i] - a*u[i]
		b = w[i] - b*u[i]
	}
	t0 := (v[n] - a*u[n]) / (1 - (w[n] - b*u[n]))
	v[0] = t0
	for i := 1; i <= n; i++ {
		v[i] += w[i] * t0
	}
	theta[0], theta[n] = t0, t0
	for i := n - 1; i > 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func buildEqs(sp *span, u, v, w []float64) {
	n := sp.N()
	if !sp.IsCycle() {
		n -= 2 // inner knots only, the ends are handled by startOpen and endOpen
	}
	for i := 1; i <= n; i++ {
		a0 := recip(sp.PostTension(i - 1))
		a1 := recip(sp.PostTension(i))
		b1 := recip(sp.PreTension(i))
		b2 := recip(sp.PreTension(i + 1))
		A := a0 / (square(b1) * sp.d(i-1))
		B := (3 - a0) / (square(b1) * sp.d(i-1))
		C := (3 - b2) / (square(a1) * sp.d(i))
		D := b2 / (square(a1) * sp.d(i))
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*sp.psi(i) - D*sp.psi(i+1) - A*v[i-1]) / t
		if w != nil {
			w[i] = -A * w[i-1] / t
		}
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func setControls(sp *span, theta []float64, controls *Controls) {
	n := sp.N()
	joins := n - 1
	if sp.IsCycle() {
		joins = n
	}
	for i := 0; i < joins; i++ {
		phi := -sp.psi(i+1) - theta[i+1]
		a := recip(sp.PostTension(i))
		b := recip(sp.PreTension(i + 1))
		p2, p3 := controlOffsets(phi, theta[i], a, b, sp.delta(i))
		controls.SetPostControl(sp.pmap(i)%sp.whole.N(), sp.Z(i)+p2)
		controls.SetPreControl(sp.pmap(i+1)%sp.whole.N(), sp.Z(i+1)-p3)
	}
}

// controlOffsets calculates the control point offsets for the join from
// z.i to z.[i+1], given the turning angles and reciprocal tensions.
func controlOffsets(phi, theta, a, b float64, dvec Pair) (Pair, Pair) {
	alpha, beta := velocityParams(theta, phi)
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	dx, dy := real(dvec), imag(dvec)
	uv1 := P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return P(a/3*rho, 0) * uv1, P(b/3*sigma, 0) * uv2
}

// velocityParams returns the terms of Hobby's velocity function.
func velocityParams(theta, phi float64) (float64, float64) {
	const (
		constA  = 1.41421356    // sqrt(2) -- empiric constants, as explained by J.Hobby
		constB  = 0.0625        // 1/16
		constC  = 0.38196601125 // (3 - sqrt(5)) / 2
		constCC = 0.61803398875 // 1 - c
	)
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// --- Helpers ---------------------------------------------------------------

func angle(pr Pair) float64 {
	if cmplx.IsNaN(pr.C()) {
		return 0.0
	}
	return cmplx.Phase(pr.C())
}

// Reduce an angle to fit into -π .. π.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

func square(a float64) float64 {
	return a * a
}

func sameDirection(c1, c2 Pair) bool {
	return math.Abs(cmplx.Phase(c1.C()/c2.C())) < _epsilon
}
