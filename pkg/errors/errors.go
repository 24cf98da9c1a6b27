// Package errors provides structured error types for wordladder.
//
// Error codes let the CLI map failures to messages and exit codes without
// matching on strings:
//   - INVALID_*: Input validation failures (words, options, config)
//   - FILE_NOT_FOUND: Missing dictionary or config file
//   - INTERNAL_ERROR: Unexpected internal errors
//
// The absence of a ladder is not an error and has no code.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWord, "origin is empty")
//	if errors.Is(err, errors.ErrCodeInvalidWord) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open dictionary %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidWord   Code = "INVALID_WORD"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Remote errors
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
