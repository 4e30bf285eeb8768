package list

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/structural"
)

// Accessor reads, writes and compares one field of a record type R. Set must
// return a new record and leave item untouched.
type Accessor[R any] interface {
	Name() string
	Get(item R) any
	Set(item R, value any) (R, error)
	Equal(a, b any) bool
}

// Key is a typed Accessor for a field of type V on records of type R.
type Key[R, V any] struct {
	name  string
	get   func(R) V
	set   func(R, V) R
	equal func(a, b V) bool
}

// NewKey declares a comparable field. Dirty tracking is shallow: == for
// comparable dynamic values, identity for maps, slices and funcs held in an
// interface-typed V.
func NewKey[R any, V comparable](name string, get func(R) V, set func(R, V) R) Key[R, V] {
	return Key[R, V]{
		name:  name,
		get:   get,
		set:   set,
		equal: func(a, b V) bool { return shallowEqual(a, b) },
	}
}

// NewKeyFunc declares a field whose values are compared with equal, for value
// types that are not comparable with ==.
func NewKeyFunc[R, V any](name string, get func(R) V, set func(R, V) R, equal func(a, b V) bool) Key[R, V] {
	if equal == nil {
		equal = func(a, b V) bool { return shallowEqual(a, b) }
	}
	return Key[R, V]{name: name, get: get, set: set, equal: equal}
}

// Name returns the field key.
func (k Key[R, V]) Name() string {
	return k.name
}

// Get returns the field value of item.
func (k Key[R, V]) Get(item R) any {
	return k.get(item)
}

// Set returns a copy of item with the field set to value. A nil value sets the
// zero V.
func (k Key[R, V]) Set(item R, value any) (R, error) {
	if value == nil {
		var zero V
		return k.set(item, zero), nil
	}
	typed, ok := value.(V)
	if !ok {
		return item, &model.TypeError{Field: k.name, Want: fmt.Sprintf("%T", *new(V)), Got: value}
	}
	return k.set(item, typed), nil
}

// Equal compares two field values of type V.
func (k Key[R, V]) Equal(a, b any) bool {
	ta, okA := a.(V)
	tb, okB := b.(V)
	if !okA || !okB {
		return a == nil && b == nil
	}
	return k.equal(ta, tb)
}

// Schema reports the accessors of a record, in render order.
type Schema[R any] interface {
	Fields(item R) structural.Record[Accessor[R]]
}

type staticSchema[R any] struct {
	fields structural.Record[Accessor[R]]
}

// NewSchema declares a fixed, ordered set of fields shared by every element.
func NewSchema[R any](accessors ...Accessor[R]) Schema[R] {
	entries := make([]structural.Entry[Accessor[R]], 0, len(accessors))
	for _, accessor := range accessors {
		if accessor == nil {
			continue
		}
		entries = append(entries, structural.Entry[Accessor[R]]{Key: accessor.Name(), Value: accessor})
	}
	return staticSchema[R]{fields: structural.NewRecord(entries...)}
}

func (s staticSchema[R]) Fields(R) structural.Record[Accessor[R]] {
	return s.fields
}

// DynamicRecord is the element type of lists decoded without a Go type, for
// example from YAML or JSON snapshots.
type DynamicRecord = structural.Record[any]

type recordSchema struct{}

// RecordSchema reads the keys of every element from the element itself, in
// insertion order.
func RecordSchema() Schema[DynamicRecord] {
	return recordSchema{}
}

func (recordSchema) Fields(item DynamicRecord) structural.Record[Accessor[DynamicRecord]] {
	entries := make([]structural.Entry[Accessor[DynamicRecord]], 0, item.Len())
	for key := range item.All() {
		entries = append(entries, structural.Entry[Accessor[DynamicRecord]]{Key: key, Value: recordKey(key)})
	}
	return structural.NewRecord(entries...)
}

// recordKey addresses one key of a DynamicRecord.
type recordKey string

func (k recordKey) Name() string {
	return string(k)
}

func (k recordKey) Get(item DynamicRecord) any {
	return item.Value(string(k))
}

func (k recordKey) Set(item DynamicRecord, value any) (DynamicRecord, error) {
	return item.With(string(k), value), nil
}

func (k recordKey) Equal(a, b any) bool {
	return shallowEqual(a, b)
}

// shallowEqual compares leaf values the way a reference comparison would:
// comparable values with ==, maps, slices, pointers, funcs and channels by
// identity. Other non-comparable values never compare equal.
func shallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Comparable() {
		return a == b
	}
	return false
}
