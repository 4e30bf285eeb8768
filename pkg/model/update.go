package model

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by every TypeError.
var ErrTypeMismatch = errors.New("model: type mismatch")

// TypeError reports a value whose dynamic type does not match the field.
type TypeError struct {
	Field string
	Want  string
	Got   any
}

func (e *TypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("model: expected %s, got %T", e.Want, e.Got)
	}
	return fmt.Sprintf("model: field %q expected %s, got %T", e.Field, e.Want, e.Got)
}

// Is lets errors.Is match ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Update is the argument of a change handler: either a replacement value or a
// mapper computing the next value from the previous one.
type Update struct {
	value  any
	mapper func(prev any) (any, error)
}

// Set builds an update that replaces the field value.
func Set(value any) Update {
	return Update{value: value}
}

// Map builds an update computed from the previous field value. A nil previous
// value is passed to fn as the zero V.
func Map[V any](fn func(prev V) V) Update {
	if fn == nil {
		return Update{}
	}
	return Update{mapper: func(prev any) (any, error) {
		if prev == nil {
			var zero V
			return fn(zero), nil
		}
		typed, ok := prev.(V)
		if !ok {
			return nil, &TypeError{Want: fmt.Sprintf("%T", *new(V)), Got: prev}
		}
		return fn(typed), nil
	}}
}

// IsMapper reports whether the update depends on the previous value.
func (u Update) IsMapper() bool {
	return u.mapper != nil
}

// Apply resolves the update against prev.
func (u Update) Apply(prev any) (any, error) {
	if u.mapper == nil {
		return u.value, nil
	}
	return u.mapper(prev)
}
