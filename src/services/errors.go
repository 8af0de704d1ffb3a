package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials indicates authentication failed. Deliberately
	// generic: unknown username and wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound indicates no usable session matches a token.
	// Expired, revoked and unknown tokens are not distinguished.
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateUsername indicates the username is already taken
	ErrDuplicateUsername = errors.New("username already exists")
)

// ValidationError describes a rejected input field. It is expected control
// flow, surfaced to the caller with the specific message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
