// Package errors provides the typed error taxonomy for estimation failures.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error (missing field,
	// non-positive LOC, misordered PERT points).
	TypeInput Type = "INPUT_ERROR"

	// TypeNotFound indicates an unknown methodology or region id.
	TypeNotFound Type = "NOT_FOUND"

	// TypeNotSupported indicates an unsupported operation or mode.
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeValidation indicates an estimate that failed plausibility bounds.
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates the configuration or constant tables could not
	// be loaded; operations fail closed on it.
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error.
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Inputf creates a formatted input error
func Inputf(format string, args ...any) *Error {
	return Newf(TypeInput, format, args...)
}

// UnknownMethodology creates a not-found error carrying the valid id list
// so batch callers can enumerate what would have worked.
func UnknownMethodology(id string, validIDs []string) *Error {
	return Newf(TypeNotFound, "unknown methodology: %s", id).
		WithContext("valid_methodologies", validIDs)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}

// Validation creates a validation error; callers attach the validation
// result as context.
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
