/*
Package curves implements concrete time functions: linear interpolants,
Bézier and Catmull-Rom curves, natural cubic splines, Hobby curves and a
couple of closed-form curves (circles, helices, sine waves).

Interpolating curves are built from caller-supplied control values and a
strictly increasing parameter grid. They copy their input and are immutable
afterwards, except for the explicit extension of linear interpolants with
Append. All curves may be evaluated concurrently.

Evaluating an interpolant outside of its interval is not an error: the
parameter is clamped to the nearest bound and a diagnostic is traced.
Closed-form curves are defined for all parameters.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}
