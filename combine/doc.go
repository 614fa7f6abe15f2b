/*
Package combine builds new time functions from existing ones. Complex
motions are assembled from simple primitives: functions are reparametrized
(Compose, Rescale), concatenated (Connect, Combine), cross-faded (Blend) or
translated (Shift).

Combinators hold references to the functions they wrap, never copies. As
all functions are free of side effects during evaluation, a function may be
shared between any number of combinators.

Domains are checked when a combinator is created. Sub-functions which do not
fit together are reported as kinema.ErrDomainMismatch, empty or inverted
intervals as kinema.ErrDegenerateInterval.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package combine

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'combine'
func tracer() tracing.Trace {
	return tracing.Select("combine")
}
