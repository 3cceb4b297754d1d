// Package errors provides structured error types for the ladder solver.
//
// Every failure that reaches a caller carries a machine-readable [Code] so the
// CLI and the HTTP API can tell bad input apart from exhausted resources. An
// unreachable target word is not an error: the solver reports it as an empty
// result instead.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures, detected before the search starts
//   - *_NOT_FOUND: missing files or resources
//   - RESOURCE_EXHAUSTED: an operational ceiling (steps, paths) was hit
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWord, "word %q contains %q", w, r)
//	if errors.Is(err, errors.ErrCodeInvalidWord) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open dictionary %s", path)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidWord    Code = "INVALID_WORD"
	ErrCodeLengthMismatch Code = "LENGTH_MISMATCH"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Operational ceilings
	ErrCodeResourceExhausted Code = "RESOURCE_EXHAUSTED"

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
// It unwraps the error chain looking for the outermost *Error.
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

// IsInputError reports whether err was caused by caller input rather than by
// the solver or its environment. Input errors are never retried.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidWord, ErrCodeLengthMismatch, ErrCodeInvalidFormat:
		return true
	}
	return false
}

// ExhaustedError provides the ceiling that was hit when a search or
// enumeration is cut short.
type ExhaustedError struct {
	Resource string // "steps" or "paths"
	Limit    int
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s limit of %d exceeded", e.Resource, e.Limit)
}

// Code returns the error code for this error type.
func (e *ExhaustedError) Code() Code {
	return ErrCodeResourceExhausted
}

// Exhausted returns an *Error with code RESOURCE_EXHAUSTED whose cause is an
// *ExhaustedError describing the limit.
func Exhausted(resource string, limit int) *Error {
	cause := &ExhaustedError{Resource: resource, Limit: limit}
	return Wrap(ErrCodeResourceExhausted, cause, "search aborted")
}
