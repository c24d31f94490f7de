package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a guarded status update
	// finds the row already moved by another caller
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrNoRole is returned when a principal has no role or permission set
	ErrNoRole = errors.New("principal has no role")

	// ErrInvariantViolation is returned for mutations the engine forbids
	// outright: touching a wildcard grant, re-transitioning a terminal job,
	// double-starting a transcription stream
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotQualified is returned when an approver does not satisfy the
	// effective clearance recorded on a job
	ErrNotQualified = errors.New("approver not qualified")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
