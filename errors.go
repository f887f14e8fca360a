package cssdecl

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a property name is empty.
	ErrEmptyName = errors.New("empty property name")

	// ErrInvalidValue is returned when a known property rejects a value.
	ErrInvalidValue = errors.New("invalid property value")
)

// InvalidValueError records a rejected declaration. It unwraps to
// ErrInvalidValue.
type InvalidValueError struct {
	Property string
	Value    string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid value", e.Property, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
