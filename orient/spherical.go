package orient

import (
	"fmt"

	"github.com/npillmayer/kinema"
	"gonum.org/v1/gonum/num/quat"
)

type sequence struct {
	kinema.Domain
	quats []kinema.Quat
	grid  []float64
}

func newSequence(kind string, quats []kinema.Quat, grid []float64) (sequence, error) {
	if len(quats) != len(grid) {
		err := fmt.Errorf("%w: %d orientations, %d grid values", kinema.ErrLengthMismatch, len(quats), len(grid))
		tracer().Errorf("cannot create %s: %v", kind, err)
		return sequence{}, err
	}
	if err := kinema.CheckGrid(grid); err != nil {
		tracer().Errorf("cannot create %s: %v", kind, err)
		return sequence{}, err
	}
	seq := sequence{
		Domain: kinema.MakeDomain(kinema.Interval{TMin: grid[0], TMax: grid[len(grid)-1]}),
		quats:  make([]kinema.Quat, len(quats)),
		grid:   append([]float64(nil), grid...),
	}
	for i, q := range quats {
		q = Normalize(q)
		if i > 0 && Dot(seq.quats[i-1], q) < 0 {
			q = quat.Scale(-1, q) // same rotation, on the near hemisphere
		}
		seq.quats[i] = q
	}
	return seq, nil
}

func (seq *sequence) locate(kind string, t float64) (int, float64) {
	i, w, ok := kinema.Locate(seq.grid, t)
	if !ok {
		tracer().Infof("%s evaluated at t=%g outside of %s, clamping", kind, t, seq.Interval())
	}
	return i, w
}

// Orientations returns a copy of the interpolated orientations. Neighbours
// may have been negated to lie on the same hemisphere.
func (seq *sequence) Orientations() []kinema.Quat {
	return append([]kinema.Quat(nil), seq.quats...)
}

// SphericalLinear interpolates orientations by slerp between neighbouring
// grid nodes.
type SphericalLinear struct {
	sequence
}

// NewSphericalLinear creates an interpolant passing quats[i] at grid[i].
func NewSphericalLinear(quats []kinema.Quat, grid []float64) (*SphericalLinear, error) {
	seq, err := newSequence("SphericalLinear", quats, grid)
	if err != nil {
		return nil, err
	}
	return &SphericalLinear{sequence: seq}, nil
}

// NewSphericalLinearEuler creates an interpolant from Euler angle triples
// (z, y, x), see FromEuler.
func NewSphericalLinearEuler(angles [][3]float64, grid []float64) (*SphericalLinear, error) {
	return NewSphericalLinear(fromEulers(angles), grid)
}

// Eval returns the orientation at t.
func (sl *SphericalLinear) Eval(t float64) kinema.Quat {
	i, w := sl.locate("SphericalLinear", t)
	return Normalize(Slerp(sl.quats[i], sl.quats[i+1], w))
}

// SphericalCubic interpolates orientations with squad. Its angular velocity
// is continuous at the grid nodes.
type SphericalCubic struct {
	sequence
	controls []kinema.Quat
}

// NewSphericalCubic creates an interpolant passing quats[i] at grid[i].
func NewSphericalCubic(quats []kinema.Quat, grid []float64) (*SphericalCubic, error) {
	seq, err := newSequence("SphericalCubic", quats, grid)
	if err != nil {
		return nil, err
	}
	sc := &SphericalCubic{sequence: seq, controls: make([]kinema.Quat, len(seq.quats))}
	n := len(seq.quats)
	for i, q := range seq.quats {
		prev, next := seq.quats[max(i-1, 0)], seq.quats[min(i+1, n-1)]
		sc.controls[i] = SquadControl(prev, q, next)
	}
	return sc, nil
}

// NewSphericalCubicEuler creates an interpolant from Euler angle triples
// (z, y, x), see FromEuler.
func NewSphericalCubicEuler(angles [][3]float64, grid []float64) (*SphericalCubic, error) {
	return NewSphericalCubic(fromEulers(angles), grid)
}

// Eval returns the orientation at t.
func (sc *SphericalCubic) Eval(t float64) kinema.Quat {
	i, w := sc.locate("SphericalCubic", t)
	q := Squad(sc.quats[i], sc.controls[i], sc.controls[i+1], sc.quats[i+1], w)
	return Normalize(q)
}

func fromEulers(angles [][3]float64) []kinema.Quat {
	quats := make([]kinema.Quat, len(angles))
	for i, a := range angles {
		quats[i] = FromEuler(a[0], a[1], a[2])
	}
	return quats
}
