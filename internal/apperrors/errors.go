package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across layers.
var (
	// ErrInvalidInput marks argument validation failures. Mutations that
	// return it leave the cart untouched.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries the field that failed validation alongside a
// human-readable reason.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every validation
// error.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// IsValidation reports whether err is a validation error anywhere in its
// chain.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
