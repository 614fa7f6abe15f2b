package kinema

import "errors"

var (
	// ErrDegenerateInterval indicates a zero-length or inverted interval.
	ErrDegenerateInterval = errors.New("degenerate interval")
	// ErrDomainMismatch indicates sub-functions whose domains do not fit together.
	ErrDomainMismatch = errors.New("domain mismatch")
	// ErrOutOfDomain indicates a parameter outside of a function's interval.
	ErrOutOfDomain = errors.New("parameter out of domain")
	// ErrChannelTypeMismatch indicates a channel whose value type does not match its writer.
	ErrChannelTypeMismatch = errors.New("channel type mismatch")
	// ErrTooFewPoints indicates an insufficient count of control points.
	ErrTooFewPoints = errors.New("too few control points")
	// ErrGridNotIncreasing indicates a parameter grid which is not strictly increasing.
	ErrGridNotIncreasing = errors.New("grid must be strictly increasing")
	// ErrLengthMismatch indicates control values and grid of different lengths.
	ErrLengthMismatch = errors.New("points and grid differ in length")
	// ErrDegenerateGeometry indicates zero-length axes or collapsed control points.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrNilFunction indicates a missing function argument.
	ErrNilFunction = errors.New("function must not be nil")
)
