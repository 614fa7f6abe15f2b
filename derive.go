package kinema

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a 3x3 matrix given by its columns. Frenet frames and rotation
// matrices are represented as frames; the columns are orthonormal then.
type Frame struct {
	X, Y, Z Vec3
}

// IdentityFrame is the frame of the world axes.
var IdentityFrame = Frame{X: V3(1, 0, 0), Y: V3(0, 1, 0), Z: V3(0, 0, 1)}

// Apply multiplies the frame matrix with v.
func (fr Frame) Apply(v Vec3) Vec3 {
	p := r3.Add(r3.Scale(v.X, fr.X), r3.Scale(v.Y, fr.Y))
	return r3.Add(p, r3.Scale(v.Z, fr.Z))
}

// IsOrthonormal is a predicate: are the columns unit vectors, perpendicular
// to each other, up to tolerance tol?
func (fr Frame) IsOrthonormal(tol float64) bool {
	ok := func(x, want float64) bool { return math.Abs(x-want) <= tol }
	return ok(r3.Dot(fr.X, fr.X), 1) && ok(r3.Dot(fr.Y, fr.Y), 1) && ok(r3.Dot(fr.Z, fr.Z), 1) &&
		ok(r3.Dot(fr.X, fr.Y), 0) && ok(r3.Dot(fr.X, fr.Z), 0) && ok(r3.Dot(fr.Y, fr.Z), 0)
}

// Tangent returns the unit tangent of f at t. Functions implementing
// Differentiable are asked directly, for all others the tangent is
// approximated by finite differences.
func Tangent(f VectorFunction, t float64) Vec3 {
	if d, ok := f.(Differentiable); ok {
		return d.Tangent(t)
	}
	return NumericTangent(f, t)
}

// Normal returns the unit normal of f at t, i.e. the normalized component of
// the second derivative orthogonal to the tangent. Straight parts of a curve
// have no normal; Normal returns the zero vector there.
func Normal(f VectorFunction, t float64) Vec3 {
	if d, ok := f.(Differentiable); ok {
		return d.Normal(t)
	}
	return NumericNormal(f, t)
}

// NumericTangent approximates the unit tangent of f at t with step width
// TangentStep. Near the lower bound of f's interval a forward difference is
// used, near the upper bound a backward difference, otherwise a central one.
// If the interval is shorter than the step, the secant between the interval
// bounds is returned.
func NumericTangent(f VectorFunction, t float64) Vec3 {
	iv := f.Interval()
	h := TangentStep
	if iv.Duration() <= 0 {
		return Origin
	}
	if iv.Duration() <= h {
		return Unit(r3.Sub(f.Eval(iv.TMax), f.Eval(iv.TMin)))
	}
	var d Vec3
	switch {
	case t-h < iv.TMin:
		d = r3.Sub(f.Eval(t+h), f.Eval(t))
	case t+h > iv.TMax:
		d = r3.Sub(f.Eval(t), f.Eval(t-h))
	default:
		d = r3.Sub(f.Eval(t+h), f.Eval(t-h))
	}
	return Unit(d)
}

// NumericNormal approximates the unit normal of f at t with step width
// NormalStep, with the same boundary policy as NumericTangent.
func NumericNormal(f VectorFunction, t float64) Vec3 {
	w := NumericTangent(f, t)
	a := secondDifference(f, t, NormalStep)
	return Unit(r3.Sub(a, r3.Scale(r3.Dot(a, w), w)))
}

func secondDifference(f VectorFunction, t, h float64) Vec3 {
	iv := f.Interval()
	if iv.Duration() <= 2*h {
		return Origin
	}
	var p0, p1, p2 Vec3
	switch {
	case t-h < iv.TMin:
		p0, p1, p2 = f.Eval(t), f.Eval(t+h), f.Eval(t+2*h)
	case t+h > iv.TMax:
		p0, p1, p2 = f.Eval(t-2*h), f.Eval(t-h), f.Eval(t)
	default:
		p0, p1, p2 = f.Eval(t-h), f.Eval(t), f.Eval(t+h)
	}
	d := r3.Add(r3.Sub(p0, r3.Scale(2, p1)), p2)
	return r3.Scale(1/(h*h), d)
}

// FrenetFrame returns the moving frame of f at t: column X is the tangent w,
// column Y is u = unit(n × w) for normal n, column Z is v = unit(w × u).
//
// u is flipped to point upwards (u.Y ≥ 0). This keeps the frame of objects
// moving along mostly horizontal paths from rolling over; it is not a general
// solution for arbitrary space curves. Where f has no normal, u is the world
// up-axis made perpendicular to w.
func FrenetFrame(f VectorFunction, t float64) Frame {
	w := Tangent(f, t)
	n := Normal(f, t)
	u := Unit(r3.Cross(n, w))
	if u == Origin {
		u = perpendicular(w)
	}
	if u.Y < 0 {
		u = r3.Scale(-1, u)
	}
	v := Unit(r3.Cross(w, u))
	return Frame{X: w, Y: u, Z: v}
}

func perpendicular(w Vec3) Vec3 {
	for _, axis := range []Vec3{V3(0, 1, 0), V3(1, 0, 0)} {
		if u := Unit(r3.Sub(axis, r3.Scale(r3.Dot(axis, w), w))); u != Origin {
			return u
		}
	}
	return Origin
}
