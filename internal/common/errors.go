// Package common defines shared constants and sentinel errors used across
// client and server layers of Menacor Vital. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("username already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)

// ValidationError collects the user-facing messages for every missing or
// malformed field of one request, so the UI can show them as a list instead
// of failing on the first problem.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError returns nil when no messages were accumulated, which
// lets callers build the list unconditionally and return the result as-is.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
