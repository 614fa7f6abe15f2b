package kinema

import (
	"fmt"
	"math"
)

// Interval is the domain [TMin, TMax] of a function. Bounds may be infinite
// to represent indefinite playback.
type Interval struct {
	TMin, TMax float64
}

// NewInterval creates an interval, checking that tmin < tmax.
func NewInterval(tmin, tmax float64) (Interval, error) {
	if math.IsNaN(tmin) || math.IsNaN(tmax) || tmin >= tmax {
		return Interval{}, fmt.Errorf("%w: [%g,%g]", ErrDegenerateInterval, tmin, tmax)
	}
	return Interval{TMin: tmin, TMax: tmax}, nil
}

// Unbounded returns the interval (-∞,+∞).
func Unbounded() Interval {
	return Interval{TMin: math.Inf(-1), TMax: math.Inf(1)}
}

// Contains is a predicate: is t within [TMin, TMax] ?
func (iv Interval) Contains(t float64) bool {
	return t >= iv.TMin && t <= iv.TMax
}

// Covers is a predicate: does iv include all of other?
func (iv Interval) Covers(other Interval) bool {
	return other.TMin >= iv.TMin && other.TMax <= iv.TMax
}

// Clamp returns the point of the interval nearest to t.
func (iv Interval) Clamp(t float64) float64 {
	if t < iv.TMin {
		return iv.TMin
	} else if t > iv.TMax {
		return iv.TMax
	}
	return t
}

// Duration is TMax - TMin, possibly +Inf.
func (iv Interval) Duration() float64 {
	return iv.TMax - iv.TMin
}

// IsBounded is a predicate: are both bounds finite?
func (iv Interval) IsBounded() bool {
	return !math.IsInf(iv.TMin, 0) && !math.IsInf(iv.TMax, 0)
}

// Pretty Stringer for intervals.
func (iv Interval) String() string {
	return fmt.Sprintf("[%g,%g]", iv.TMin, iv.TMax)
}
