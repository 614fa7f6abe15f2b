/*
Package control plays time functions into channels. A controller maps the
global time of a scene to the local time of its function, evaluates the
function and writes the result to a channel, i.e. a typed cell owned by
someone else (usually a node of a scene graph).

Local time follows one of two repeat policies: Clamp saturates at the ends
of the local interval, Cycle wraps around periodically. The mapping is a
pure function of a controller's Timing and the global time.

A driver calls Update on every controller once per frame. Update reports
whether the channel has been written to, so the driver knows if dependent
state (e.g. world transforms) has to be recomputed. Controllers may be
collected in a Group, which isolates them from each other's failures.

Controllers are not safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package control

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'control'
func tracer() tracing.Trace {
	return tracing.Select("control")
}
