package pointdist

import (
	"errors"
	"fmt"
)

var (
	// ErrType is matched by every error caused by an argument of the wrong kind:
	// a non-sequence point or a non-numeric coordinate.
	ErrType = errors.New("type error")

	// ErrValue is matched by every error caused by a sequence of the wrong length.
	ErrValue = errors.New("value error")
)

// TypeError reports a point argument that is not a sequence, or a coordinate
// that is not a number.
//
// Arg is 1 or 2. Index is -1 when the argument itself is not a sequence.
type TypeError struct {
	Arg   int
	Index int
	Got   string
}

func (e *TypeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("point%d must be a sequence of 3 numbers, got %s", e.Arg, e.Got)
	}
	return fmt.Sprintf("point%d[%d]: all coordinates must be numbers, got %s", e.Arg, e.Index, e.Got)
}

func (e *TypeError) Unwrap() error { return ErrType }

// ValueError reports a point sequence that is empty or not exactly 3 long.
type ValueError struct {
	Arg    int
	Length int
}

func (e *ValueError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("point%d: points must not be empty", e.Arg)
	}
	return fmt.Sprintf("point%d: points must have exactly 3 coordinates, got %d", e.Arg, e.Length)
}

func (e *ValueError) Unwrap() error { return ErrValue }
