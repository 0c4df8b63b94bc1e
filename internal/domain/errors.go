package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken: registration hit the username uniqueness constraint.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrFlightIntegrity: a booking references a flight that cannot be
	// resolved. This is a data-integrity fault, never user-correctable.
	ErrFlightIntegrity = errors.New("booking references missing flight")
)

// FieldError is a validation failure scoped to a single input field.
// Recoverable by resubmission.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// NewFieldError builds a FieldError for the given field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}
