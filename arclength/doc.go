/*
Package arclength reparametrizes curves by arc length. A curve traversed by
its arc length moves at constant speed: equal parameter increments cover
equal distances. This is what a walking character or a camera dolly
usually wants, regardless of how the curve was constructed.

Arc length is approximated by the length of an inscribed polygon with N
evenly spaced (in the original parameter) vertices. There is no adaptive
refinement; the approximation error is of order 1/N.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arclength

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arclength'
func tracer() tracing.Trace {
	return tracing.Select("arclength")
}
