// Package apperrors defines the error taxonomy surfaced at the UI boundary.
// Store-level reads never produce these; absence is represented as absence.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by login when no user matches the
	// email/role pair or the password comparison fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when an operation targets a record id that
	// does not exist in its collection.
	ErrNotFound = errors.New("not found")

	// ErrServerConnection wraps transport-level failures of the remote
	// login endpoint.
	ErrServerConnection = errors.New("server connection error")

	// ErrFeedbackSubmitted is returned when feedback is submitted for a
	// request that already has feedback.
	ErrFeedbackSubmitted = errors.New("feedback already submitted")
)

// ValidationError reports required form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// MissingFields builds a ValidationError for the named fields.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
