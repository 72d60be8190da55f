package arraylist

import (
	"errors"
	"fmt"
)

// Domain errors for list operations.
var (
	// ErrInvalidArgument indicates a non-positive initial capacity.
	ErrInvalidArgument = errors.New("arraylist: invalid argument")

	// ErrIndexOutOfBounds indicates an index outside the valid range.
	ErrIndexOutOfBounds = errors.New("arraylist: index out of bounds")

	// ErrElementNotFound indicates value removal found no matching element.
	ErrElementNotFound = errors.New("arraylist: element not found")
)

// IndexError carries the rejected index and the list size at the time of
// the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arraylist: index %d out of bounds for size %d", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func notFound(element any) error {
	return fmt.Errorf("%w: %v", ErrElementNotFound, element)
}
