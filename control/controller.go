package control

import (
	"fmt"
	"math"

	"github.com/npillmayer/kinema"
)

// Updater is anything a driver updates once per frame.
type Updater interface {
	Update(global float64) bool
}

// Controller plays a function into a channel.
type Controller[T any] struct {
	fn            kinema.Function[T]
	ch            Channel[T]
	timing        Timing
	skipUnchanged bool
	lastLocal     float64
	written       bool
}

// New creates a controller evaluating fn at local time and writing the
// result to ch. Any function may be played, whatever its construction.
func New[T any](fn kinema.Function[T], ch Channel[T], timing Timing) (*Controller[T], error) {
	if fn == nil {
		return nil, kinema.ErrNilFunction
	}
	if ch == nil {
		return nil, fmt.Errorf("%w: channel must not be nil", kinema.ErrChannelTypeMismatch)
	}
	if timing.Policy == Cycle && !(timing.Duration() > 0 && kinema.IsFinite(timing.Duration())) {
		return nil, fmt.Errorf("%w: cannot cycle %s", kinema.ErrDegenerateInterval, timing)
	}
	return &Controller[T]{fn: fn, ch: ch, timing: timing}, nil
}

// Play creates a controller playing fn over its own interval at normal
// speed, starting at global time 0.
func Play[T any](fn kinema.Function[T], ch Channel[T], policy RepeatPolicy) (*Controller[T], error) {
	if fn == nil {
		return nil, kinema.ErrNilFunction
	}
	timing, err := Over(fn.Interval(), policy)
	if err != nil {
		return nil, err
	}
	return New(fn, ch, timing)
}

// SkipUnchanged suppresses writes when local time did not change since the
// last write, e.g. when clamped at the end of the interval. Part of builder
// functionality.
func (c *Controller[T]) SkipUnchanged(on bool) *Controller[T] {
	c.skipUnchanged = on
	return c
}

// Timing returns the time mapping of the controller.
func (c *Controller[T]) Timing() Timing {
	return c.timing
}

// LocalTime maps global time to the local time of the function.
func (c *Controller[T]) LocalTime(global float64) float64 {
	return c.timing.LocalTime(global)
}

// Update evaluates the function at the local time for global and writes the
// result to the channel. It returns false, leaving the channel untouched,
// before the controller's start time, and, with SkipUnchanged set, if local
// time has not changed.
func (c *Controller[T]) Update(global float64) bool {
	if math.IsNaN(global) || global < c.timing.GlobalStart {
		return false
	}
	local := c.LocalTime(global)
	if c.skipUnchanged && c.written && local == c.lastLocal {
		return false
	}
	c.ch.Write(c.fn.Eval(local))
	c.lastLocal, c.written = local, true
	return true
}
