/*
Package hobby finds smooth planar paths through a sequence of knots, using
John Hobby's spline interpolation algorithm, as known from MetaFont and
MetaPost.

Spline interpolation by Hobby's algorithm results in aesthetically pleasing
curves, with less overshooting than common cubic splines. This makes it a good
choice for motion paths of animated objects: a handful of knots suffices for a
believable trajectory. The primary source of information is:

	Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
	Computer Science Dept. Stanford University
	Report No. STAN-CS-85-1047, Jan 1985

The practical algorithm is explained in Computers & Typesetting, Vol. B & D.

# Usage

Clients build a "skeleton" path with a builder, then solve it for the control
points of the cubic Bézier segments between the knots:

	path := Nullpath().Knot(P(0,0)).Curve().Knot(P(2,3)).TensionCurve(1.4, 1.4).Knot(P(5,3)).
		Curve().DirKnot(P(3,-1), P(-1,0)).Curve().Cycle()
	controls, err := Solve(path)

In MetaFont's notation this is the path

	(0,0)..(2,3)..tension 1.4..(5,3)..(3,-1){left}..cycle

Package curves lifts solved paths into 3-space to be used as time functions.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hobby

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hobby'
func tracer() tracing.Trace {
	return tracing.Select("hobby")
}
