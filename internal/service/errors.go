package service

import (
	"errors"
	"fmt"
)

// ValidationError reports a request field that failed shape or range checks.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

var (
	// ErrArchiveDisabled is returned by archive queries when no graph is configured.
	ErrArchiveDisabled = errors.New("reading archive is not configured")
	// ErrInvalidCredentials hides whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
