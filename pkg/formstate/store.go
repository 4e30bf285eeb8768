package formstate

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/model"
)

// ErrNilTransform is returned by Flush when a nil transform was dispatched.
var ErrNilTransform = errors.New("formstate: nil transform")

// Validator recomputes the error tree of a list after its value changes. The
// result must be nil or index aligned with values.
type Validator[R any] func(values []R) []model.ElementErrors

// Store owns the canonical value, initial value and error trees of one list
// field. Every change arrives as a model.Transform and produces a new value
// slice; previous snapshots are never mutated.
//
// A Store is not safe for concurrent use.
type Store[R any] struct {
	name      string
	value     []R
	initial   []R
	errors    []model.ElementErrors
	pending   []model.Transform[R]
	touched   bool
	batching  bool
	validator Validator[R]
	observers []func(model.ListField[R])
	onError   func(error)
	lastErr   error
}

// New constructs a store whose value and initial value both start as value.
// A configured validator runs once on the starting value and replaces any
// errors seeded with WithErrors.
func New[R any](name string, value []R, options ...Option[R]) *Store[R] {
	s := &Store[R]{
		name:    name,
		value:   value,
		initial: value,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.validator != nil {
		s.errors = s.validator(s.value)
	}
	return s
}

// Name returns the field name.
func (s *Store[R]) Name() string {
	return s.name
}

// Value returns the current value slice. Callers must not mutate it.
func (s *Store[R]) Value() []R {
	return s.value
}

// InitialValue returns the initial value slice.
func (s *Store[R]) InitialValue() []R {
	return s.initial
}

// Errors returns the current error tree.
func (s *Store[R]) Errors() []model.ElementErrors {
	return s.errors
}

// Touched reports whether any field of the list has been blurred.
func (s *Store[R]) Touched() bool {
	return s.touched
}

// Pending reports the number of queued transforms.
func (s *Store[R]) Pending() int {
	return len(s.pending)
}

// Field returns the snapshot handed to the list controller. Snapshots taken
// without an intervening change share their slices, so the controller's
// recompute gate sees them as unchanged.
func (s *Store[R]) Field() model.ListField[R] {
	return model.ListField[R]{
		Name:         s.name,
		Value:        s.value,
		InitialValue: s.initial,
		Error:        s.errors,
		OnBlur:       s.blur,
		OnChange:     s.dispatch,
	}
}

// Subscribe registers fn to receive the new snapshot after every applied
// change, reset or error update.
func (s *Store[R]) Subscribe(fn func(model.ListField[R])) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// Dispatch queues transform. Without batching it is applied immediately and
// the error is returned; with batching it waits for Flush.
func (s *Store[R]) Dispatch(transform model.Transform[R]) error {
	s.pending = append(s.pending, transform)
	if s.batching {
		return nil
	}
	return s.Flush()
}

// Flush applies queued transforms in dispatch order, each one against the
// result of the previous. When any transform fails the whole batch is
// discarded and the store keeps its pre-batch state.
func (s *Store[R]) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	batch := s.pending
	s.pending = nil

	current := s.value
	for idx, transform := range batch {
		if transform == nil {
			return fmt.Errorf("formstate: %s: transform %d: %w", s.name, idx, ErrNilTransform)
		}
		next, err := transform(current)
		if err != nil {
			return fmt.Errorf("formstate: %s: transform %d: %w", s.name, idx, err)
		}
		current = next
	}

	s.value = current
	s.lastErr = nil
	if s.validator != nil {
		s.errors = s.validator(current)
	}
	s.notify()
	return nil
}

// SetErrors replaces the error tree, for example with messages mapped from a
// server response.
func (s *Store[R]) SetErrors(errs []model.ElementErrors) {
	s.errors = errs
	s.notify()
}

// Reset drops queued transforms and restores the initial value.
func (s *Store[R]) Reset() {
	s.pending = nil
	s.value = s.initial
	s.touched = false
	s.errors = nil
	if s.validator != nil {
		s.errors = s.validator(s.value)
	}
	s.notify()
}

// Commit makes the current value the new initial value, clearing dirty
// state after a successful submission.
func (s *Store[R]) Commit() {
	s.initial = s.value
	s.notify()
}

// Err returns the error of the last change received through OnChange when it
// failed to apply. A later successful flush clears it; use WithErrorHandler to
// observe every failure.
func (s *Store[R]) Err() error {
	return s.lastErr
}

func (s *Store[R]) dispatch(transform model.Transform[R]) {
	if err := s.Dispatch(transform); err != nil {
		s.lastErr = err
		if s.onError != nil {
			s.onError(err)
		}
	}
}

func (s *Store[R]) blur() {
	s.touched = true
}

func (s *Store[R]) notify() {
	if len(s.observers) == 0 {
		return
	}
	field := s.Field()
	for _, fn := range s.observers {
		fn(field)
	}
}
