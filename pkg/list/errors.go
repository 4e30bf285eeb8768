package list

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is matched by ContractError.
	ErrLengthMismatch = errors.New("list: value, initial value and error lengths differ")
	// ErrMissingOnChange is returned when a field snapshot has no OnChange.
	ErrMissingOnChange = errors.New("list: field OnChange is required")
)

// ContractError reports a sibling array whose length does not match the value
// array of the list field.
type ContractError struct {
	Field string
	Array string
	Want  int
	Got   int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("list: field %q: %s has %d entries, value has %d", e.Field, e.Array, e.Got, e.Want)
}

// Unwrap exposes ErrLengthMismatch to errors.Is.
func (e *ContractError) Unwrap() error {
	return ErrLengthMismatch
}
