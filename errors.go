package prioq

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when inserting a value that is already live.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when updating or removing an absent value.
	ErrNotFound = errors.New("key not found")

	// ErrEmptyQueue is returned when extracting or peeking on an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrInsufficientElements is returned when extracting more elements than are live.
	ErrInsufficientElements = errors.New("insufficient elements")

	// ErrLengthMismatch is returned when batch-insert argument slices differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIncompatibleKind is returned when merging queues of different ordering directions.
	ErrIncompatibleKind = errors.New("incompatible queue kind")
)

// DuplicateKeyError indicates an insert of a value that is already live.
//
// It satisfies errors.Is(err, ErrDuplicateKey).
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// NotFoundError indicates an update or removal of an absent value.
//
// It satisfies errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientElementsError indicates a bulk extraction that requested more
// elements than are live.
//
// It satisfies errors.Is(err, ErrInsufficientElements).
type InsufficientElementsError struct {
	Requested int
	Available int
}

func (e *InsufficientElementsError) Error() string {
	return fmt.Sprintf("insufficient elements: requested %d, available %d", e.Requested, e.Available)
}

func (e *InsufficientElementsError) Unwrap() error { return ErrInsufficientElements }

// LengthMismatchError indicates batch-insert argument slices of unequal length.
//
// It satisfies errors.Is(err, ErrLengthMismatch).
type LengthMismatchError struct {
	Values     int
	Priorities int
	Owners     int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d values, %d priorities, %d owners", e.Values, e.Priorities, e.Owners)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// BatchInsertError reports the index of the tuple that failed a batch insert.
// Tuples at lower indexes were inserted with full per-element semantics and
// remain live.
//
// Unwrap exposes the per-element failure (typically a DuplicateKeyError).
type BatchInsertError struct {
	Index int
	err   error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("batch insert at index %d: %v", e.Index, e.err)
}

func (e *BatchInsertError) Unwrap() error { return e.err }

// IncompatibleKindError indicates a merge between a min-heap and a max-heap.
//
// It satisfies errors.Is(err, ErrIncompatibleKind).
type IncompatibleKindError struct {
	Dst Kind
	Src Kind
}

func (e *IncompatibleKindError) Error() string {
	return fmt.Sprintf("incompatible queue kind: cannot merge %s into %s", e.Src, e.Dst)
}

func (e *IncompatibleKindError) Unwrap() error { return ErrIncompatibleKind }
