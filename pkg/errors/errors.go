package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the direct services.
const (
	// Config errors
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"
	ErrCodeConfigParseFailed = "CONFIG_PARSE_FAILED"
	ErrCodeConfigInvalid     = "CONFIG_INVALID"

	// Domain errors
	ErrCodeContestNotFound = "CONTEST_NOT_FOUND"

	// Database errors
	ErrCodeDatabaseError = "DATABASE_ERROR"

	// Validation errors
	ErrCodeValidationFailed = "VALIDATION_FAILED"
)

// DirectError represents an error raised by the direct services.
type DirectError struct {
	Code    string
	Message string
	Err     error
}

func (e *DirectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DirectError) Unwrap() error {
	return e.Err
}

// NewDirectError creates a new DirectError.
func NewDirectError(code, message string, err error) *DirectError {
	return &DirectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrConfigNotFound returns an error when a configuration resource cannot be read.
func ErrConfigNotFound(resource string, err error) *DirectError {
	return &DirectError{
		Code:    ErrCodeConfigNotFound,
		Message: fmt.Sprintf("configuration resource not readable: %s", resource),
		Err:     err,
	}
}

// ErrConfigParse returns an error when a configuration resource is malformed.
func ErrConfigParse(resource string, err error) *DirectError {
	return &DirectError{
		Code:    ErrCodeConfigParseFailed,
		Message: fmt.Sprintf("failed to parse configuration resource: %s", resource),
		Err:     err,
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(reason string) *DirectError {
	return &DirectError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
		Err:     nil,
	}
}

// ErrContestNotFound returns an error when a contest does not exist.
func ErrContestNotFound(contestID int64) *DirectError {
	return &DirectError{
		Code:    ErrCodeContestNotFound,
		Message: fmt.Sprintf("contest not found: %d", contestID),
		Err:     nil,
	}
}

// ErrDatabaseError wraps database errors.
func ErrDatabaseError(operation string, err error) *DirectError {
	return &DirectError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrValidationFailed returns a validation error.
func ErrValidationFailed(field, reason string) *DirectError {
	return &DirectError{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Err:     nil,
	}
}

// Code returns the code of the outermost DirectError wrapped by err,
// or an empty string if err carries none.
func Code(err error) string {
	var de *DirectError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HasCode reports whether err wraps a DirectError carrying the given code.
func HasCode(err error, code string) bool {
	var de *DirectError
	return stderrors.As(err, &de) && de.Code == code
}
