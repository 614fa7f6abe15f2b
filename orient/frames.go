package orient

import "github.com/npillmayer/kinema"

// Frames adapts an orientation function to a function of rotation matrices,
// suitable for rotation channels.
func Frames(f kinema.QuatFunction) kinema.Function[kinema.Frame] {
	return frames{f}
}

type frames struct {
	f kinema.QuatFunction
}

func (fr frames) Interval() kinema.Interval {
	return fr.f.Interval()
}

func (fr frames) Eval(t float64) kinema.Frame {
	return ToFrame(fr.f.Eval(t))
}

// Fixed is a constant orientation over an unbounded interval.
type Fixed kinema.Quat

// Interval is unbounded.
func (q Fixed) Interval() kinema.Interval { return kinema.Unbounded() }

// Eval returns q, normalized.
func (q Fixed) Eval(float64) kinema.Quat { return Normalize(kinema.Quat(q)) }
