package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDirectError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *DirectError
		wantMsg string
	}{
		{
			name: "error without wrapped error",
			err: &DirectError{
				Code:    ErrCodeContestNotFound,
				Message: "contest not found: 42",
				Err:     nil,
			},
			wantMsg: "CONTEST_NOT_FOUND: contest not found: 42",
		},
		{
			name: "error with wrapped error",
			err: &DirectError{
				Code:    ErrCodeDatabaseError,
				Message: "database error during query",
				Err:     errors.New("connection timeout"),
			},
			wantMsg: "DATABASE_ERROR: database error during query: connection timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.wantMsg {
				t.Errorf("DirectError.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestDirectError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := &DirectError{
		Code:    ErrCodeDatabaseError,
		Message: "test error",
		Err:     originalErr,
	}

	unwrapped := err.Unwrap()
	if unwrapped != originalErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, originalErr)
	}
}

func TestErrConfigNotFound(t *testing.T) {
	originalErr := errors.New("file does not exist")
	err := ErrConfigNotFound("overview.xml", originalErr)

	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigNotFound)
	}

	if !strings.Contains(err.Message, "overview.xml") {
		t.Errorf("Message should contain resource name, got %v", err.Message)
	}

	if err.Err != originalErr {
		t.Errorf("Wrapped error = %v, want %v", err.Err, originalErr)
	}
}

func TestErrConfigParse(t *testing.T) {
	originalErr := errors.New("XML syntax error on line 1")
	err := ErrConfigParse("contestFees.xml", originalErr)

	if err.Code != ErrCodeConfigParseFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigParseFailed)
	}

	if !strings.Contains(err.Message, "contestFees.xml") {
		t.Errorf("Message should contain resource name, got %v", err.Message)
	}
}

func TestErrConfigInvalid(t *testing.T) {
	reason := "no studio overview is defined in overview.xml"
	err := ErrConfigInvalid(reason)

	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigInvalid)
	}

	if !strings.Contains(err.Message, reason) {
		t.Errorf("Message should contain reason %v, got %v", reason, err.Message)
	}
}

func TestErrContestNotFound(t *testing.T) {
	err := ErrContestNotFound(30001234)

	if err.Code != ErrCodeContestNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeContestNotFound)
	}

	if !strings.Contains(err.Message, "30001234") {
		t.Errorf("Message should contain contest ID, got %v", err.Message)
	}
}

func TestErrDatabaseError(t *testing.T) {
	operation := "get contest submissions"
	originalErr := errors.New("connection lost")
	err := ErrDatabaseError(operation, originalErr)

	if err.Code != ErrCodeDatabaseError {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDatabaseError)
	}

	if !strings.Contains(err.Message, operation) {
		t.Errorf("Message should contain operation %v, got %v", operation, err.Message)
	}

	if err.Err != originalErr {
		t.Errorf("Wrapped error = %v, want %v", err.Err, originalErr)
	}
}

func TestErrValidationFailed(t *testing.T) {
	field := "CopilotFee"
	reason := "must be non-negative"
	err := ErrValidationFailed(field, reason)

	if err.Code != ErrCodeValidationFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeValidationFailed)
	}

	if !strings.Contains(err.Message, field) || !strings.Contains(err.Message, reason) {
		t.Errorf("Message should contain field and reason, got %v", err.Message)
	}
}

func TestNewDirectError(t *testing.T) {
	originalErr := errors.New("wrapped error")

	err := NewDirectError("TEST_CODE", "test message", originalErr)

	if err.Code != "TEST_CODE" {
		t.Errorf("Code = %v, want TEST_CODE", err.Code)
	}

	if err.Message != "test message" {
		t.Errorf("Message = %v, want test message", err.Message)
	}

	if err.Err != originalErr {
		t.Errorf("Wrapped error = %v, want %v", err.Err, originalErr)
	}
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("config validation failed: %w", ErrConfigInvalid("empty"))

	if !HasCode(wrapped, ErrCodeConfigInvalid) {
		t.Error("HasCode should find the code through fmt.Errorf wrapping")
	}

	if HasCode(wrapped, ErrCodeConfigNotFound) {
		t.Error("HasCode should not match a different code")
	}

	if HasCode(errors.New("plain"), ErrCodeConfigInvalid) {
		t.Error("HasCode should be false for non-DirectError errors")
	}

	if HasCode(nil, ErrCodeConfigInvalid) {
		t.Error("HasCode should be false for nil")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("plain"), want: ""},
		{name: "direct error", err: ErrContestNotFound(7), want: ErrCodeContestNotFound},
		{name: "wrapped", err: fmt.Errorf("failed to read config file: %w", ErrConfigNotFound("overview.xml", nil)), want: ErrCodeConfigNotFound},
		{name: "code without constant", err: fmt.Errorf("outer: %w", NewDirectError("SCHEMA_DRIFT", "unexpected column", nil)), want: "SCHEMA_DRIFT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	originalErr := errors.New("database connection failed")
	directErr := ErrDatabaseError("query", originalErr)

	if !errors.Is(directErr, originalErr) {
		t.Error("errors.Is should recognize wrapped error")
	}

	var target *DirectError
	if !errors.As(fmt.Errorf("outer: %w", directErr), &target) {
		t.Fatal("errors.As should find the DirectError")
	}

	if target.Code != ErrCodeDatabaseError {
		t.Errorf("Code = %v, want %v", target.Code, ErrCodeDatabaseError)
	}
}
