package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks client input rejected before it reaches the
	// domain, such as a malformed request body.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError names the field of an entity that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets callers test for ErrValidationFailed with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
