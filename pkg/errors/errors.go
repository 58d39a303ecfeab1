// Package errors provides structured error types for the badge generator.
//
// Every failure that aborts a run carries a [Code] so the CLI can tell a bad
// configuration apart from a missing asset or an unwritable output file.
// There is no partial-output mode: any *Error returned from loading or
// rendering ends the run before the PDF is written.
//
// # Error Codes
//
//   - INVALID_*: configuration, input rows and template rules
//   - FILE_NOT_FOUND, ASSET_LOAD, FONT: asset preload failures
//   - RENDER, WRITE: PDF production failures
//   - INTERNAL: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "row %d: name is empty", row)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeAssetLoad, origErr, "load template %s", id)
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
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRule   Code = "INVALID_RULE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Asset errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeAssetLoad    Code = "ASSET_LOAD"
	ErrCodeFont         Code = "FONT"

	// Output errors
	ErrCodeRender Code = "RENDER"
	ErrCodeWrite  Code = "WRITE"

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
// For *Error types the code prefix is dropped and the cause, if any, is
// appended. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}
