package curves

import (
	"math"

	"github.com/npillmayer/kinema"
	"github.com/npillmayer/kinema/hobby"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane spans a 2D coordinate system in 3-space. Pair (x,y) maps to
// Origin + x·U + y·V.
type Plane struct {
	Origin kinema.Vec3
	U, V   kinema.Vec3
}

// GroundPlane is the plane y = 0, with path x along the X axis and path y
// along the Z axis.
var GroundPlane = Plane{U: kinema.V3(1, 0, 0), V: kinema.V3(0, 0, 1)}

// Lift maps a planar point into 3-space.
func (pl Plane) Lift(p hobby.Pair) kinema.Vec3 {
	return r3.Add(pl.Origin, r3.Add(r3.Scale(p.X(), pl.U), r3.Scale(p.Y(), pl.V)))
}

// HobbyCurve is a smooth curve through the knots of a Hobby path, lifted
// into 3-space. Segment i runs from knot i to knot i+1 over [i, i+1].
type HobbyCurve struct {
	kinema.Domain
	segments []*Bezier
}

// NewHobbyCurve solves path and lifts it onto the ground plane.
func NewHobbyCurve(path *hobby.Path) (*HobbyCurve, error) {
	return NewHobbyCurveOn(path, GroundPlane)
}

// NewHobbyCurveOn solves path and lifts it onto plane.
func NewHobbyCurveOn(path *hobby.Path, plane Plane) (*HobbyCurve, error) {
	controls, err := hobby.Solve(path)
	if err != nil {
		return nil, err
	}
	segs := hobby.Segments(path, controls)
	hc := &HobbyCurve{
		Domain:   kinema.MakeDomain(kinema.Interval{TMin: 0, TMax: float64(len(segs))}),
		segments: make([]*Bezier, len(segs)),
	}
	for i, s := range segs {
		hc.segments[i] = MustBezier(plane.Lift(s[0]), plane.Lift(s[1]), plane.Lift(s[2]), plane.Lift(s[3]))
	}
	tracer().Debugf("Hobby curve with %d segments", len(segs))
	return hc, nil
}

// Segments returns the count of cubic segments.
func (hc *HobbyCurve) Segments() int {
	return len(hc.segments)
}

// Segment returns the cubic Bézier curve for segment i.
func (hc *HobbyCurve) Segment(i int) *Bezier {
	return hc.segments[i]
}

func (hc *HobbyCurve) locate(t float64) (*Bezier, float64) {
	if math.IsNaN(t) {
		return hc.segments[0], t
	}
	i := int(math.Floor(t))
	if i < 0 {
		i = 0
	} else if i >= len(hc.segments) {
		i = len(hc.segments) - 1
	}
	return hc.segments[i], t - float64(i)
}

// Eval evaluates segment ⌊t⌋ at the fractional part of t.
func (hc *HobbyCurve) Eval(t float64) kinema.Vec3 {
	seg, s := hc.locate(kinema.ClampWarn(hc.Interval(), "HobbyCurve", t))
	return deCasteljau(seg.points, s)
}

// Tangent returns the unit tangent at t.
func (hc *HobbyCurve) Tangent(t float64) kinema.Vec3 {
	seg, s := hc.locate(hc.Interval().Clamp(t))
	return seg.Tangent(s)
}

// Normal returns the unit normal at t.
func (hc *HobbyCurve) Normal(t float64) kinema.Vec3 {
	seg, s := hc.locate(hc.Interval().Clamp(t))
	return seg.Normal(s)
}
