package boolvec

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthExceeded is returned when a requested size or capacity cannot be
	// honored because of the allocator's ceiling. The vector is left unchanged.
	ErrLengthExceeded = errors.New("boolvec: length exceeded")
	// ErrIndexOutOfRange is returned for positions outside the vector.
	ErrIndexOutOfRange = errors.New("boolvec: index out of range")
	// ErrInvalidSize is returned for negative sizes and counts.
	ErrInvalidSize = errors.New("boolvec: invalid size")
	// ErrEmpty is returned when removing from an empty vector.
	ErrEmpty = errors.New("boolvec: vector is empty")
)

// LengthError describes a request that exceeded the vector's maximum size.
//
// It matches ErrLengthExceeded with errors.Is. When the allocator refused the
// request, its error can be accessed via errors.Unwrap.
type LengthError struct {
	Op        string
	Requested int
	Max       int
	cause     error
}

func (e *LengthError) Error() string {
	msg := fmt.Sprintf("boolvec: %s: length %d exceeds max size %d", e.Op, e.Requested, e.Max)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Is reports whether target is ErrLengthExceeded.
func (e *LengthError) Is(target error) bool { return target == ErrLengthExceeded }

func (e *LengthError) Unwrap() error { return e.cause }

func indexError(op string, i, size int) error {
	return fmt.Errorf("%w: %s: index %d with size %d", ErrIndexOutOfRange, op, i, size)
}
