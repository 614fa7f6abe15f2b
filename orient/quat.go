package orient

import (
	"math"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/num/quat"
)

// Identity is the orientation without rotation.
func Identity() kinema.Quat {
	return kinema.Quat{Real: 1}
}

// FromAxisAngle returns the rotation by angle (radians) around axis. A zero
// axis yields the identity.
func FromAxisAngle(axis kinema.Vec3, angle float64) kinema.Quat {
	u := kinema.Unit(axis)
	if u == kinema.Origin {
		return Identity()
	}
	sin, cos := math.Sincos(angle / 2)
	return kinema.Quat{Real: cos, Imag: sin * u.X, Jmag: sin * u.Y, Kmag: sin * u.Z}
}

// FromEuler returns the rotation for intrinsic Euler angles (radians): first
// around Z, then around the rotated Y, then around the twice rotated X. As a
// product, it is qz·qy·qx.
func FromEuler(z, y, x float64) kinema.Quat {
	qz := FromAxisAngle(kinema.V3(0, 0, 1), z)
	qy := FromAxisAngle(kinema.V3(0, 1, 0), y)
	qx := FromAxisAngle(kinema.V3(1, 0, 0), x)
	return quat.Mul(quat.Mul(qz, qy), qx)
}

// Normalize scales q to unit length. The zero quaternion yields the identity.
func Normalize(q kinema.Quat) kinema.Quat {
	n := quat.Abs(q)
	if kinema.Is0(n) {
		return Identity()
	}
	return quat.Scale(1/n, q)
}

// Dot is the 4D scalar product of p and q.
func Dot(p, q kinema.Quat) float64 {
	return p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
}

// Rotate applies the rotation q to v, i.e. q·v·q*.
func Rotate(q kinema.Quat, v kinema.Vec3) kinema.Vec3 {
	p := quat.Mul(quat.Mul(q, raise(v)), quat.Conj(q))
	return kinema.V3(p.Imag, p.Jmag, p.Kmag)
}

// ToFrame returns the rotation matrix of a unit quaternion, as the images of
// the world axes.
func ToFrame(q kinema.Quat) kinema.Frame {
	return kinema.Frame{
		X: Rotate(q, kinema.IdentityFrame.X),
		Y: Rotate(q, kinema.IdentityFrame.Y),
		Z: Rotate(q, kinema.IdentityFrame.Z),
	}
}

// raise lifts a vector to a pure quaternion.
func raise(v kinema.Vec3) kinema.Quat {
	return kinema.Quat{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}
