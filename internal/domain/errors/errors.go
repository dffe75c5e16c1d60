package errors

import (
	"fmt"

	"agency/internal/errors"
)

// Error kinds raised while constructing domain values. Use errors.Is against
// these to tell an absent field apart from an out-of-range one.
var (
	// ErrMissingValue is the kind for a required field that was not supplied.
	ErrMissingValue = errors.New("missing required value")
	// ErrInvalidValue is the kind for a field that was supplied but falls outside
	// its allowed range, format or set.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError reports which field failed validation and why.
type FieldError struct {
	field string
	value any
	kind  error
}

// NewMissingValueError creates an error for an absent required field.
func NewMissingValueError(field string) *FieldError {
	return &FieldError{
		field: field,
		kind:  ErrMissingValue,
	}
}

// NewInvalidValueError creates an error for a field holding an unacceptable value.
func NewInvalidValueError(field string, value any) *FieldError {
	return &FieldError{
		field: field,
		value: value,
		kind:  ErrInvalidValue,
	}
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.kind == ErrMissingValue {
		return fmt.Sprintf("invalid %s: missing", e.field)
	}

	return fmt.Sprintf("invalid %s: %v", e.field, e.value)
}

// Unwrap exposes the kind so errors.Is matches ErrMissingValue or ErrInvalidValue.
func (e *FieldError) Unwrap() error {
	return e.kind
}

// Field returns the human-readable name of the offending field.
func (e *FieldError) Field() string {
	return e.field
}

// Value returns the rejected value. It is nil for missing fields.
func (e *FieldError) Value() any {
	return e.value
}

// Kind returns ErrMissingValue or ErrInvalidValue.
func (e *FieldError) Kind() error {
	return e.kind
}
