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

	// ErrNoTicketsAvailable is returned by claim when the pool is empty.
	// Callers translate it into an advisory backoff, never into a failure.
	ErrNoTicketsAvailable = errors.New("no tickets available")

	// ErrGuardConflict is returned when a state guard rejects an operation
	// because the row has already advanced. The caller must re-read and
	// re-decide; blind retries of the same transition are a bug.
	ErrGuardConflict = errors.New("state guard conflict")

	// ErrIllegalTransition is returned when a caller requests an edge the
	// state machine does not define. Unlike a guard conflict this is a
	// programming or operator error, not a race.
	ErrIllegalTransition = errors.New("illegal state transition")
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
