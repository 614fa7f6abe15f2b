package control

import (
	"fmt"
	"math"

	"github.com/npillmayer/kinema"
)

// RepeatPolicy decides what happens to local time beyond the local interval.
type RepeatPolicy int8

// Repeat policies.
const (
	Clamp RepeatPolicy = iota // saturate at the interval bounds
	Cycle                     // wrap around modulo the interval duration
)

func (p RepeatPolicy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Cycle:
		return "cycle"
	}
	return fmt.Sprintf("RepeatPolicy(%d)", int8(p))
}

// Timing maps global time to local time. Local time LocalMin is reached at
// global time GlobalStart, and local time advances Rate times as fast as
// global time. For negative rates playback starts at LocalMax.
type Timing struct {
	Policy      RepeatPolicy
	LocalMin    float64
	LocalMax    float64
	GlobalStart float64
	Rate        float64
}

// NewTiming creates a validated timing. The local interval must not be
// empty, and it has to be bounded for cyclic playback. Rate must be finite
// and non-zero; negative rates play backwards and need a bounded LocalMax.
func NewTiming(policy RepeatPolicy, localMin, localMax, globalStart, rate float64) (Timing, error) {
	iv, err := kinema.NewInterval(localMin, localMax)
	if err != nil {
		return Timing{}, err
	}
	if policy == Cycle && !iv.IsBounded() {
		return Timing{}, fmt.Errorf("%w: cannot cycle over %s", kinema.ErrDegenerateInterval, iv)
	}
	if !kinema.IsFinite(globalStart) {
		return Timing{}, fmt.Errorf("%w: global start time %g", kinema.ErrDegenerateInterval, globalStart)
	}
	if !kinema.IsFinite(rate) || rate == 0 {
		return Timing{}, fmt.Errorf("%w: rate %g", kinema.ErrDegenerateInterval, rate)
	}
	if rate < 0 && math.IsInf(localMax, 1) {
		return Timing{}, fmt.Errorf("%w: cannot play %s backwards", kinema.ErrDegenerateInterval, iv)
	}
	return Timing{Policy: policy, LocalMin: localMin, LocalMax: localMax, GlobalStart: globalStart, Rate: rate}, nil
}

// Over creates a timing playing interval iv at normal speed, starting at
// global time 0.
func Over(iv kinema.Interval, policy RepeatPolicy) (Timing, error) {
	return NewTiming(policy, iv.TMin, iv.TMax, 0, 1)
}

// Duration is the length of the local interval.
func (tm Timing) Duration() float64 {
	return tm.LocalMax - tm.LocalMin
}

// LocalTime maps global time to local time, according to the repeat policy.
func (tm Timing) LocalTime(global float64) float64 {
	anchor := tm.LocalMin
	if tm.Rate < 0 {
		anchor = tm.LocalMax
	}
	local := anchor + (global-tm.GlobalStart)*tm.Rate
	if tm.Policy == Cycle {
		d := tm.Duration()
		x := math.Mod(local-tm.LocalMin, d)
		if x < 0 {
			x += d
		}
		return tm.LocalMin + x
	}
	return math.Max(tm.LocalMin, math.Min(local, tm.LocalMax))
}

func (tm Timing) String() string {
	return fmt.Sprintf("%s [%g,%g] from %g at rate %g", tm.Policy, tm.LocalMin, tm.LocalMax,
		tm.GlobalStart, tm.Rate)
}
