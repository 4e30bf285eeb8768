package list

import "github.com/goliatone/go-formstate/pkg/model"

// Field is the typed view of a Descriptor for a field of type V.
type Field[V any] struct {
	Value        V
	InitialValue V
	Error        []string
	Name         string
	Dirty        bool
	OnChange     model.ChangeHandler
	OnBlur       func()
}

// Set replaces the field value.
func (f Field[V]) Set(value V) {
	if f.OnChange != nil {
		f.OnChange.Change(model.Set(value))
	}
}

// Map updates the field from its value at apply time.
func (f Field[V]) Map(fn func(prev V) V) {
	if f.OnChange != nil {
		f.OnChange.Change(model.Map(fn))
	}
}

// Lookup returns the typed descriptor for key. It reports false when the
// element has no such key or its values are not of type V.
func Lookup[R, V any](fields Descriptors, key Key[R, V]) (Field[V], bool) {
	desc, ok := fields.Get(key.Name())
	if !ok {
		return Field[V]{}, false
	}
	value, ok := asType[V](desc.Value)
	if !ok {
		return Field[V]{}, false
	}
	initial, ok := asType[V](desc.InitialValue)
	if !ok {
		return Field[V]{}, false
	}
	return Field[V]{
		Value:        value,
		InitialValue: initial,
		Error:        desc.Error,
		Name:         desc.Name,
		Dirty:        desc.Dirty,
		OnChange:     desc.OnChange,
		OnBlur:       desc.OnBlur,
	}, true
}

func asType[V any](value any) (V, bool) {
	if value == nil {
		var zero V
		return zero, true
	}
	typed, ok := value.(V)
	return typed, ok
}
