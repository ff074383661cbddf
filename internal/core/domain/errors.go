package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source or stage type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Source validation errors.

	// ErrInvalidShape indicates a source list or a source entry has the wrong shape.
	ErrInvalidShape = errors.New("invalid source shape")

	// ErrDuplicateSourceID indicates two sources in one set share an ID.
	ErrDuplicateSourceID = errors.New("duplicate source id")
)

// ShapeError reports a source list that is not a sequence, or an entry without a string ID.
// Index is the position of the offending entry, or -1 when the list itself is malformed.
type ShapeError struct {
	Index  int
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidShape, e.Reason)
	}
	return fmt.Sprintf("%s: source %d: %s", ErrInvalidShape, e.Index, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidShape) hold.
func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}

// DuplicateIDError reports the ID that was seen twice during normalization.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %q is not unique", ErrDuplicateSourceID, e.ID)
}

// Unwrap makes errors.Is(err, ErrDuplicateSourceID) hold.
func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateSourceID
}
