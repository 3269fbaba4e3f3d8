package prioq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{
			name:     "DuplicateKey",
			err:      &DuplicateKeyError{Key: "A"},
			sentinel: ErrDuplicateKey,
			msg:      "duplicate key: A",
		},
		{
			name:     "NotFound",
			err:      &NotFoundError{Key: 42},
			sentinel: ErrNotFound,
			msg:      "key not found: 42",
		},
		{
			name:     "InsufficientElements",
			err:      &InsufficientElementsError{Requested: 5, Available: 2},
			sentinel: ErrInsufficientElements,
			msg:      "insufficient elements: requested 5, available 2",
		},
		{
			name:     "LengthMismatch",
			err:      &LengthMismatchError{Values: 2, Priorities: 1, Owners: 2},
			sentinel: ErrLengthMismatch,
			msg:      "length mismatch: 2 values, 1 priorities, 2 owners",
		},
		{
			name:     "IncompatibleKind",
			err:      &IncompatibleKindError{Dst: MinHeap, Src: MaxHeap},
			sentinel: ErrIncompatibleKind,
			msg:      "incompatible queue kind: cannot merge max into min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestBatchInsertErrorUnwrap(t *testing.T) {
	inner := &DuplicateKeyError{Key: "B"}
	err := &BatchInsertError{Index: 3, err: inner}

	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var dup *DuplicateKeyError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, "batch insert at index 3: duplicate key: B", err.Error())
}
