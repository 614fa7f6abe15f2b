package combine

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/kinema"
)

// Connection concatenates functions with adjacent domains. Parameter t is
// dispatched to the last piece starting at or before t; parameters before
// the start of the second piece go to the first one. Thus the first piece
// serves (-∞, f₁.tmin) and the last one serves [fₙ.tmin, +∞).
type Connection[T any] struct {
	kinema.Domain
	pieces []kinema.Function[T]
	starts *treemap.Map // start of piece → index of piece, for pieces 1…n
}

// Connect concatenates pieces, where each piece's interval has to end
// where the next one starts.
func Connect[T any](pieces ...kinema.Function[T]) (*Connection[T], error) {
	if len(pieces) == 0 {
		err := fmt.Errorf("%w: nothing to connect", kinema.ErrDomainMismatch)
		tracer().Errorf("%v", err)
		return nil, err
	}
	c := &Connection[T]{
		pieces: append([]kinema.Function[T](nil), pieces...),
		starts: treemap.NewWith(utils.Float64Comparator),
	}
	for i, f := range pieces {
		if f == nil {
			return nil, fmt.Errorf("%w: piece #%d", kinema.ErrNilFunction, i)
		}
		if iv := f.Interval(); !(iv.TMin < iv.TMax) {
			err := fmt.Errorf("%w: piece #%d over %s", kinema.ErrDegenerateInterval, i, iv)
			tracer().Errorf("cannot connect: %v", err)
			return nil, err
		}
		if i == 0 {
			continue
		}
		prev, next := pieces[i-1].Interval(), f.Interval()
		if !kinema.Is0(next.TMin - prev.TMax) {
			err := fmt.Errorf("%w: piece #%d ends at %g, piece #%d starts at %g",
				kinema.ErrDomainMismatch, i-1, prev.TMax, i, next.TMin)
			tracer().Errorf("cannot connect: %v", err)
			return nil, err
		}
		c.starts.Put(next.TMin, i)
	}
	c.Domain = kinema.MakeDomain(kinema.Interval{
		TMin: pieces[0].Interval().TMin,
		TMax: pieces[len(pieces)-1].Interval().TMax,
	})
	tracer().Debugf("connected %d pieces over %s", len(pieces), c.Interval())
	return c, nil
}

// N is the count of pieces.
func (c *Connection[T]) N() int {
	return len(c.pieces)
}

// Piece returns the index of the piece responsible for t.
func (c *Connection[T]) Piece(t float64) int {
	if math.IsNaN(t) {
		return 0
	}
	if _, i := c.starts.Floor(t); i != nil {
		return i.(int)
	}
	return 0
}

// Eval evaluates the piece responsible for t.
func (c *Connection[T]) Eval(t float64) T {
	return c.pieces[c.Piece(t)].Eval(t)
}

// Switch selects between functions at explicit switch points: function i
// serves parameters t < limit[i], the last function serves the rest.
type Switch[T any] struct {
	kinema.Domain
	funcs  []kinema.Function[T]
	limits []float64
}

// Connect2 switches from f1 to f2 at mid. Parameter mid itself belongs to f2.
func Connect2[T any](f1 kinema.Function[T], mid float64, f2 kinema.Function[T]) (*Switch[T], error) {
	return newSwitch([]kinema.Function[T]{f1, f2}, []float64{mid})
}

// Connect3 switches from f1 to f2 at lim1 and from f2 to f3 at lim2.
func Connect3[T any](f1 kinema.Function[T], lim1 float64, f2 kinema.Function[T], lim2 float64,
	f3 kinema.Function[T]) (*Switch[T], error) {
	return newSwitch([]kinema.Function[T]{f1, f2, f3}, []float64{lim1, lim2})
}

func newSwitch[T any](funcs []kinema.Function[T], limits []float64) (*Switch[T], error) {
	for i, f := range funcs {
		if f == nil {
			return nil, fmt.Errorf("%w: function #%d", kinema.ErrNilFunction, i)
		}
	}
	iv := kinema.Interval{TMin: funcs[0].Interval().TMin, TMax: funcs[len(funcs)-1].Interval().TMax}
	lower := iv.TMin
	for i, lim := range limits {
		if math.IsNaN(lim) || lim < lower || lim > iv.TMax || (i > 0 && lim <= lower) {
			err := fmt.Errorf("%w: switch point %g out of order in %s", kinema.ErrDomainMismatch, lim, iv)
			tracer().Errorf("cannot connect: %v", err)
			return nil, err
		}
		lower = lim
	}
	return &Switch[T]{
		Domain: kinema.MakeDomain(iv),
		funcs:  funcs,
		limits: limits,
	}, nil
}

// Eval evaluates the function responsible for t.
func (sw *Switch[T]) Eval(t float64) T {
	for i, lim := range sw.limits {
		if t < lim {
			return sw.funcs[i].Eval(t)
		}
	}
	return sw.funcs[len(sw.funcs)-1].Eval(t)
}
