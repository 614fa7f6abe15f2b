/*
Package orient interpolates orientations. Orientations are unit quaternions
(gonum's quat.Number), built from axis/angle pairs or from Euler angles.

SphericalLinear interpolates a sequence of orientations with slerp,
SphericalCubic with Shoemake's squad, which is continuous in angular
velocity. Both are QuatFunctions over a strictly increasing grid, clamping
parameters outside of it.

Rotation channels take 3x3 matrices rather than quaternions. Frames adapts
any QuatFunction to a function of kinema.Frame values.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package orient

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'orient'
func tracer() tracing.Trace {
	return tracing.Select("orient")
}
