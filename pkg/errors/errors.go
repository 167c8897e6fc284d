// Package errors provides structured error types for multicolumn.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and library callers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (caller errors)
//   - MALFORMED_*: User-supplied text that failed to parse
//   - NO_*: Missing environment (nothing to act on)
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColumnCount, "column count must be at least 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidColumnCount) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNoActiveTarget, origErr, "insert block")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidColumnCount Code = "INVALID_COLUMN_COUNT"
	ErrCodeInvalidPosition    Code = "INVALID_POSITION"
	ErrCodeInvalidSetting     Code = "INVALID_SETTING"
	ErrCodeInvalidPreset      Code = "INVALID_PRESET"
	ErrCodeInvalidFlag        Code = "INVALID_FLAG"
	ErrCodeInvalidPath        Code = "INVALID_PATH"

	// User-supplied text that could not be parsed
	ErrCodeMalformedRatioInput Code = "MALFORMED_RATIO_INPUT"

	// Environment errors
	ErrCodeNoActiveTarget Code = "NO_ACTIVE_TARGET"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsUserError reports whether err was caused by bad input rather than by the
// environment or a bug. User errors are reported and discarded; they never
// abort a running server.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidColumnCount, ErrCodeInvalidPosition,
		ErrCodeInvalidSetting, ErrCodeInvalidPreset, ErrCodeInvalidFlag,
		ErrCodeInvalidPath, ErrCodeMalformedRatioInput:
		return true
	}
	return false
}
