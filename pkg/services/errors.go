// Package services holds the business logic between the HTTP edge and the
// persistence layer.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNotCancellable is returned when cancelling a course already terminal.
	ErrNotCancellable = errors.New("course is not cancellable")

	// ErrAccessDenied is returned when a caller touches another owner's data.
	ErrAccessDenied = errors.New("access denied")

	// ErrDeploymentActive is returned when creating a deployment while another
	// is still live, or deprovisioning a deploying instance.
	ErrDeploymentActive = errors.New("another deployment is active")

	// ErrTokenSpent is returned when an enrollment token is expired or already used.
	ErrTokenSpent = errors.New("enrollment token expired or already used")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
