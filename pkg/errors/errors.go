// Package errors provides structured error types for ukechords.
//
// Error codes group failures into a few categories:
//   - INVALID_*: malformed input, definitions, or configuration
//   - FILE_NOT_FOUND / READ_FAILED: files that cannot be read
//
// Only the I/O-level codes are fatal. A malformed definition line is reported
// with ErrCodeInvalidDefinition and skipped by the catalog loader; an unknown
// chord name is never an error at all.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDefinition, "expected 4 frets, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidDefinition) {
//	    // Drop the line and keep loading
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeReadFailed, origErr, "read %s", path)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDefinition Code = "INVALID_DEFINITION"
	ErrCodeInvalidChordName  Code = "INVALID_CHORD_NAME"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Definitions source errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeReadFailed   Code = "READ_FAILED"
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

// Is reports whether the outermost *Error in err's chain has the given code.
// A dropped line whose cause is a bad chord name is INVALID_DEFINITION, not
// INVALID_CHORD_NAME.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the text shown after the CLI's error icon: the message
// and cause without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err describes a definitions source that could not
// be read at all. Everything else is recoverable at the call site.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeFileNotFound, ErrCodeReadFailed:
		return true
	}
	return false
}
