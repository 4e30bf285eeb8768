package structural

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("structural: index out of range")

// IndexError reports an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("structural: index %d out of range [0:%d]", e.Index, e.Len)
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Replace returns a new slice equal to sequence except at index, which holds
// value. The result has the same length; every other position carries the
// original element unchanged so reference comparisons upstream still hold.
// The input is never mutated and an out-of-range index is reported rather
// than growing the slice.
func Replace[T any](sequence []T, index int, value T) ([]T, error) {
	if index < 0 || index >= len(sequence) {
		return nil, &IndexError{Index: index, Len: len(sequence)}
	}
	out := make([]T, len(sequence))
	copy(out, sequence)
	out[index] = value
	return out, nil
}
