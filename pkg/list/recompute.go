package list

import (
	"unsafe"

	"github.com/goliatone/go-formstate/pkg/model"
)

// ShouldRecompute reports whether next differs from prev in value, initial
// value or errors. Slices are compared by identity (backing array and
// length), never by content. Distinct empty non-nil slices may share the
// runtime's zero-size allocation and then count as the same slice.
func ShouldRecompute[R any](prev, next model.ListField[R]) bool {
	return !sameSlice(prev.Value, next.Value) ||
		!sameSlice(prev.Error, next.Error) ||
		!sameSlice(prev.InitialValue, next.InitialValue)
}

func sameSlice[T any](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}
