package hobby

import (
	"errors"
	"fmt"
	"math/cmplx"
)

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates path knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates cyclic path redundantly repeats first knot as last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cycle path must not repeat first knot as terminal knot")
)

// Pair is a point or direction in the plane.
type Pair complex128

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

var unknown = Pair(cmplx.NaN())

// Path is a skeleton path of knots, with optional directions, curls and
// tensions at the knots. To construct a path, start with Nullpath() and
// extend it.
type Path struct {
	points   []Pair // knot i
	cycle    bool   // is this path cyclic ?
	predirs  []Pair // explicit pre-direction at knot i
	postdirs []Pair // explicit post-direction at knot i
	curls    []Pair // explicit pre- and post-curl at knot i
	tensions []Pair // explicit pre- and post-tension at knot i
}

// Controls collects the calculated control points of a path.
type Controls struct {
	prec  []Pair // control point i-
	postc []Pair // control point i+
}

// SetPreControl sets the control point before knot i.
func (ctrls *Controls) SetPreControl(i int, c Pair) {
	ctrls.prec = grow(ctrls.prec, i, unknown)
	ctrls.prec[i] = c
}

// SetPostControl sets the control point after knot i.
func (ctrls *Controls) SetPostControl(i int, c Pair) {
	ctrls.postc = grow(ctrls.postc, i, unknown)
	ctrls.postc[i] = c
}

// PreControl is the control point before knot i, NaN if unknown.
func (ctrls *Controls) PreControl(i int) Pair {
	return at(ctrls.prec, i, unknown)
}

// PostControl is the control point after knot i, NaN if unknown.
func (ctrls *Controls) PostControl(i int) Pair {
	return at(ctrls.postc, i, unknown)
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of three knots, which are
// connected by a curve, then a straight line, and a curve again.
//
//	path := Nullpath().Knot(P(0,0)).Curve().Knot(P(3,2)).Line().Knot(P(5,2.5)).Curve().Cycle()
func Nullpath() *Path {
	return &Path{}
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a standard smooth knot to a path. Part of builder functionality.
func (path *Path) Knot(p Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// CurlKnot adds a knot with curl information. A curl value of 1.0 is
// considered neutral. Part of builder functionality.
func (path *Path) CurlKnot(p Pair, precurl, postcurl float64) *Path {
	path.points = append(path.points, p)
	path.SetPreCurl(path.N()-1, precurl)
	path.SetPostCurl(path.N()-1, postcurl)
	return path
}

// DirKnot adds a knot with a given tangent direction.
// Part of builder functionality.
func (path *Path) DirKnot(p Pair, dir Pair) *Path {
	path.points = append(path.points, p)
	path.SetPreDir(path.N()-1, dir)
	path.SetPostDir(path.N()-1, dir)
	return path
}

// Line connects two knots with a straight line.
// Part of builder functionality.
func (path *Path) Line() *Path {
	if path.N() == 0 {
		panic("cannot add line to empty path")
	}
	path.SetPostCurl(path.N()-1, 1.0)
	path.SetPreCurl(path.N(), 1.0)
	return path
}

// Curve connects two knots with a smooth curve.
// Part of builder functionality.
func (path *Path) Curve() *Path {
	if path.N() == 0 {
		panic("cannot add curve to empty path")
	}
	return path.TensionCurve(1.0, 1.0)
}

// TensionCurve connects two knots with a tense curve.
// Tensions are adapted to lie between 3/4 and 4.
// Part of builder functionality.
func (path *Path) TensionCurve(t1, t2 float64) *Path {
	if path.N() == 0 {
		panic("cannot add curve to empty path")
	}
	if t1 != 1.0 {
		path.SetPostTension(path.N()-1, t1)
	}
	if t2 != 1.0 {
		path.SetPreTension(path.N(), t2)
	}
	return path
}

// SetPreDir is a property setter.
func (path *Path) SetPreDir(i int, dir Pair) *Path {
	path.predirs = grow(path.predirs, i, unknown)
	path.predirs[i] = dir
	return path
}

// SetPostDir is a property setter.
func (path *Path) SetPostDir(i int, dir Pair) *Path {
	path.postdirs = grow(path.postdirs, i, unknown)
	path.postdirs[i] = dir
	return path
}

// SetPreCurl is a property setter.
func (path *Path) SetPreCurl(i int, curl float64) *Path {
	path.curls = grow(path.curls, i, 1+1i)
	path.curls[i] = P(curl, imag(path.curls[i]))
	return path
}

// SetPostCurl is a property setter.
func (path *Path) SetPostCurl(i int, curl float64) *Path {
	path.curls = grow(path.curls, i, 1+1i)
	path.curls[i] = P(real(path.curls[i]), curl)
	return path
}

// SetPreTension is a property setter. Tensions are adapted to lie between
// 3/4 and 4.
func (path *Path) SetPreTension(i int, tension float64) *Path {
	path.tensions = grow(path.tensions, i, 1+1i)
	path.tensions[i] = P(clampTension(tension), imag(path.tensions[i]))
	return path
}

// SetPostTension is a property setter. Tensions are adapted to lie between
// 3/4 and 4.
func (path *Path) SetPostTension(i int, tension float64) *Path {
	path.tensions = grow(path.tensions, i, 1+1i)
	path.tensions[i] = P(real(path.tensions[i]), clampTension(tension))
	return path
}

func clampTension(t float64) float64 {
	if t < 0.75 {
		return 0.75
	} else if t > 4.0 {
		return 4.0
	}
	return t
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the knot count. For cyclic paths, the first knot is not repeated.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) Pair {
	return path.points[i%path.N()]
}

// PreDir gets the incoming direction at z.i, NaN if unspecified.
func (path *Path) PreDir(i int) Pair {
	return at(path.predirs, i, unknown)
}

// PostDir gets the outgoing direction at z.i, NaN if unspecified.
func (path *Path) PostDir(i int) Pair {
	return at(path.postdirs, i, unknown)
}

// PreCurl gets the curl before z.i.
func (path *Path) PreCurl(i int) float64 {
	return real(at(path.curls, i, 1+1i))
}

// PostCurl gets the curl after z.i.
func (path *Path) PostCurl(i int) float64 {
	return imag(at(path.curls, i, 1+1i))
}

// PreTension returns the tension before z.i.
func (path *Path) PreTension(i int) float64 {
	return real(at(path.tensions, i, 1+1i))
}

// PostTension returns the tension after z.i.
func (path *Path) PostTension(i int) float64 {
	return imag(at(path.tensions, i, 1+1i))
}

// Extend a slice of pairs to make room for index i, filling with deflt.
func grow(arr []Pair, i int, deflt Pair) []Pair {
	for len(arr) <= i {
		arr = append(arr, deflt)
	}
	return arr
}

// Get a value from a slice if present, default value deflt otherwise.
func at(arr []Pair, i int, deflt Pair) Pair {
	if i >= len(arr) {
		return deflt
	}
	return arr[i]
}
