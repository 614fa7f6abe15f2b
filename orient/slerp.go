package orient

import (
	"math"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/num/quat"
)

// Below this angle between two quaternions, slerp falls back to normalized
// linear interpolation.
const nlerpThreshold = 1e-4

// Slerp interpolates spherically between the orientations p and q, with
// weight w ∈ [0,1]. It takes the shorter arc, i.e. q is negated if
// necessary.
func Slerp(p, q kinema.Quat, w float64) kinema.Quat {
	return slerp(p, q, w, true)
}

func slerp(p, q kinema.Quat, w float64, shortest bool) kinema.Quat {
	d := Dot(p, q)
	if shortest && d < 0 {
		q, d = quat.Scale(-1, q), -d
	}
	d = math.Max(-1, math.Min(d, 1))
	theta := math.Acos(d)
	if theta < nlerpThreshold {
		return Normalize(quat.Add(quat.Scale(1-w, p), quat.Scale(w, q)))
	}
	sin := math.Sin(theta)
	a, b := math.Sin((1-w)*theta)/sin, math.Sin(w*theta)/sin
	return quat.Add(quat.Scale(a, p), quat.Scale(b, q))
}

// Squad is Shoemake's spherical cubic interpolation between orientations p
// and q, with inner control quaternions a (after p) and b (before q).
func Squad(p, a, b, q kinema.Quat, w float64) kinema.Quat {
	return slerp(slerp(p, q, w, false), slerp(a, b, w, false), 2*w*(1-w), false)
}

// SquadControl returns the inner control quaternion at q, given its
// neighbours prev and next in a sequence:
//
//	s = q · exp( -(log(q⁻¹·next) + log(q⁻¹·prev)) / 4 )
func SquadControl(prev, q, next kinema.Quat) kinema.Quat {
	inv := quat.Inv(q)
	l := quat.Add(quat.Log(quat.Mul(inv, next)), quat.Log(quat.Mul(inv, prev)))
	return Normalize(quat.Mul(q, quat.Exp(quat.Scale(-0.25, l))))
}
