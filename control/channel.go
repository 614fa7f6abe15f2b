package control

import (
	"fmt"

	"github.com/npillmayer/kinema"
)

// Channel is a typed cell a controller writes into. The owner of a channel
// reads it, e.g. when rendering.
type Channel[T any] interface {
	Read() T
	Write(T)
}

// Cell is a plain in-memory channel.
type Cell[T any] struct {
	value T
}

// NewCell creates a channel holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Read returns the current value.
func (c *Cell[T]) Read() T {
	return c.value
}

// Write replaces the current value.
func (c *Cell[T]) Write(v T) {
	c.value = v
}

// Kind is the value type of a slot.
type Kind int8

// Kinds of slot values.
const (
	Scalar      Kind = iota // float64
	Vector3                 // kinema.Vec3
	Vector4                 // kinema.Vec4
	Rotation                // kinema.Frame, a rotation matrix
	Orientation             // kinema.Quat
)

var kindNames = [...]string{"scalar", "vector3", "vector4", "rotation", "orientation"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// KindOf returns the kind of type T, if T is a valid slot type.
func KindOf[T any]() (Kind, bool) {
	var v T
	switch any(v).(type) {
	case float64:
		return Scalar, true
	case kinema.Vec3:
		return Vector3, true
	case kinema.Vec4:
		return Vector4, true
	case kinema.Frame:
		return Rotation, true
	case kinema.Quat:
		return Orientation, true
	}
	return 0, false
}

// Slot is a named cell with a kind fixed at creation. Slots are how scene
// graph nodes publish their animatable attributes; controllers get typed
// access to a slot by binding to it.
type Slot struct {
	name  string
	kind  Kind
	value any
}

// NewSlot creates a slot holding the neutral value of its kind: zero, the
// origin, the identity rotation or the identity orientation.
func NewSlot(name string, kind Kind) *Slot {
	s := &Slot{name: name, kind: kind}
	switch kind {
	case Scalar:
		s.value = 0.0
	case Vector3:
		s.value = kinema.Origin
	case Vector4:
		s.value = kinema.Vec4{}
	case Rotation:
		s.value = kinema.IdentityFrame
	case Orientation:
		s.value = kinema.Quat{Real: 1}
	default:
		panic(fmt.Sprintf("unknown slot kind %d", kind))
	}
	return s
}

// Name returns the name of the slot.
func (s *Slot) Name() string {
	return s.name
}

// Kind returns the kind of the slot.
func (s *Slot) Kind() Kind {
	return s.kind
}

// Value returns the current value, untyped.
func (s *Slot) Value() any {
	return s.value
}

func (s *Slot) String() string {
	return fmt.Sprintf("%s:%s = %v", s.name, s.kind, s.value)
}

// Bind returns a typed channel onto slot s. It fails with
// kinema.ErrChannelTypeMismatch if T does not match the kind of s.
func Bind[T any](s *Slot) (Channel[T], error) {
	k, ok := KindOf[T]()
	if !ok || k != s.kind {
		var v T
		err := fmt.Errorf("%w: cannot bind %T to slot %q of kind %s", kinema.ErrChannelTypeMismatch, v, s.name, s.kind)
		tracer().Errorf("%v", err)
		return nil, err
	}
	return slotChannel[T]{s}, nil
}

type slotChannel[T any] struct {
	slot *Slot
}

func (ch slotChannel[T]) Read() T {
	return ch.slot.value.(T)
}

func (ch slotChannel[T]) Write(v T) {
	ch.slot.value = v
}
