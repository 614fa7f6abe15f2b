package kinema

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or direction in 3-space.
type Vec3 = r3.Vec

// Quat is a quaternion. Orientations are unit quaternions.
type Quat = quat.Number

// V3 is a quick notation for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Origin represents the frequently used constant (0,0,0).
var Origin = V3(0, 0, 0)

// Unit returns v normalized to length 1, or the zero vector if v is
// (numerically) zero.
func Unit(v Vec3) Vec3 {
	if Is0(r3.Norm(v)) {
		return Origin
	}
	return r3.Unit(v)
}

// Vec4 is a 4-vector, e.g. a homogeneous point or an RGBA color.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a quick notation for constructing a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W}
}

// Sub returns v - u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W}
}

// Scale returns f·v.
func (v Vec4) Scale(f float64) Vec4 {
	return Vec4{f * v.X, f * v.Y, f * v.Z, f * v.W}
}

// Norm is the euclidean length of v.
func (v Vec4) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Pretty Stringer for 4-vectors.
func (v Vec4) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", v.X, v.Y, v.Z, v.W)
}

// Value is the set of function values which form a vector space and may
// therefore be interpolated, blended and shifted.
type Value interface {
	float64 | Vec3 | Vec4
}

// Add returns a + b.
func Add[T Value](a, b T) T {
	switch x := any(a).(type) {
	case float64:
		return any(x + any(b).(float64)).(T)
	case Vec3:
		return any(r3.Add(x, any(b).(Vec3))).(T)
	case Vec4:
		return any(x.Add(any(b).(Vec4))).(T)
	}
	panic(fmt.Sprintf("unsupported value type %T", a))
}

// Sub returns a - b.
func Sub[T Value](a, b T) T {
	switch x := any(a).(type) {
	case float64:
		return any(x - any(b).(float64)).(T)
	case Vec3:
		return any(r3.Sub(x, any(b).(Vec3))).(T)
	case Vec4:
		return any(x.Sub(any(b).(Vec4))).(T)
	}
	panic(fmt.Sprintf("unsupported value type %T", a))
}

// Scale returns f·a.
func Scale[T Value](f float64, a T) T {
	switch x := any(a).(type) {
	case float64:
		return any(f * x).(T)
	case Vec3:
		return any(r3.Scale(f, x)).(T)
	case Vec4:
		return any(x.Scale(f)).(T)
	}
	panic(fmt.Sprintf("unsupported value type %T", a))
}

// Lerp interpolates linearly between a (w=0) and b (w=1). For w=0 and w=1
// the result is exactly a or b, respectively.
func Lerp[T Value](a, b T, w float64) T {
	if w == 1 {
		return b
	}
	return Add(a, Scale(w, Sub(b, a)))
}

// Dist is the euclidean distance between a and b.
func Dist[T Value](a, b T) float64 {
	switch x := any(Sub(a, b)).(type) {
	case float64:
		return math.Abs(x)
	case Vec3:
		return r3.Norm(x)
	case Vec4:
		return x.Norm()
	}
	panic(fmt.Sprintf("unsupported value type %T", a))
}
