/*
Package kinema implements functions of a single real parameter (time),
used to drive animated attributes: real-, vector- and rotation-valued
functions over an interval, their numeric derivatives and Frenet frames.

Concrete curves live in sub-package curves and orient, combinators in
combine, arc-length reparametrization in arclength and the time-mapping
controllers in control.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package kinema

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kinema'
func tracer() tracing.Trace {
	return tracing.Select("kinema")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// TangentStep is the step width for numeric first derivatives.
var TangentStep float64 = 0.01

// NormalStep is the step width for numeric second derivatives.
var NormalStep float64 = 0.0001

// ClosedCurveEpsilon is the squared distance below which the first and last
// control point of a polygon are considered identical, i.e. the polygon is closed.
var ClosedCurveEpsilon float64 = 0.0001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp01 restricts w to [0,1].
func Clamp01(w float64) float64 {
	return math.Max(0, math.Min(1, w))
}

// IsFinite is a predicate: is n neither NaN nor ±Inf?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
