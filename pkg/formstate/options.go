package formstate

import "github.com/goliatone/go-formstate/pkg/model"

// Option configures a Store.
type Option[R any] func(*Store[R])

// WithBatching queues transforms until Flush instead of applying each one
// as it arrives.
func WithBatching[R any](enabled bool) Option[R] {
	return func(s *Store[R]) {
		s.batching = enabled
	}
}

// WithValidator recomputes the error tree after every applied change.
func WithValidator[R any](validator Validator[R]) Option[R] {
	return func(s *Store[R]) {
		s.validator = validator
	}
}

// WithInitialValue sets an initial value that differs from the starting
// value, for example when restoring an unsaved draft.
func WithInitialValue[R any](initial []R) Option[R] {
	return func(s *Store[R]) {
		s.initial = initial
	}
}

// WithErrors seeds the error tree.
func WithErrors[R any](errs []model.ElementErrors) Option[R] {
	return func(s *Store[R]) {
		s.errors = errs
	}
}

// WithErrorHandler is called with every change that fails to apply through
// the field's OnChange.
func WithErrorHandler[R any](fn func(error)) Option[R] {
	return func(s *Store[R]) {
		s.onError = fn
	}
}
