// Package errors provides structured error types for gridgen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP server
//   - Machine-readable error codes for programmatic handling
//   - A clear split between input errors and internal faults
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration validation failures
//   - grid codes (EMPTY_GRID, ROW_LENGTH_MISMATCH, UNKNOWN_TOKEN): parse failures
//   - INTERNAL_*: invariant violations, never caused by user input
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", key)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle configuration error
//	}
//
// Stage packages define richer error types (row/column, field names) that
// implement [Coder]; [Is] and [GetCode] understand both kinds.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors
	ErrCodeEmptyGrid         Code = "EMPTY_GRID"
	ErrCodeRowLengthMismatch Code = "ROW_LENGTH_MISMATCH"
	ErrCodeUnknownToken      Code = "UNKNOWN_TOKEN"

	// Configuration errors
	ErrCodeInvalidLexicon          Code = "INVALID_LEXICON"
	ErrCodeIncompleteStyleOverride Code = "INCOMPLETE_STYLE_OVERRIDE"
	ErrCodeInvalidStyle            Code = "INVALID_STYLE"
	ErrCodeInvalidLayoutConfig     Code = "INVALID_LAYOUT_CONFIG"
	ErrCodeInvalidConfig           Code = "INVALID_CONFIG"
	ErrCodeInvalidInput            Code = "INVALID_INPUT"
	ErrCodeFileNotFound            Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal         Code = "INTERNAL_ERROR"
	ErrCodeUnsupportedShape Code = "INTERNAL_UNSUPPORTED_SHAPE"
)

// Coder is implemented by error types that carry their own code.
type Coder interface {
	Code() Code
}

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
// The outermost coded error in the chain decides.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// It walks the chain and returns the first code found, either from an
// *Error or from a type implementing [Coder].
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// IsInternal reports whether err signals a bug in gridgen rather than bad
// input or configuration.
func IsInternal(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "INTERNAL")
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause's own user message. For other errors, returns the error
// string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Location is implemented by errors that point at a place in the input.
// Line and Column are 1-based; zero means unknown.
type Location interface {
	Position() (line, column int)
}

// PositionOf returns the input position carried by err, if any.
func PositionOf(err error) (line, column int, ok bool) {
	var loc Location
	if errors.As(err, &loc) {
		line, column = loc.Position()
		return line, column, true
	}
	return 0, 0, false
}

// Field is implemented by errors that name an offending configuration field.
type Field interface {
	FieldName() string
}

// FieldOf returns the configuration field named by err, if any.
func FieldOf(err error) (string, bool) {
	var f Field
	if errors.As(err, &f) {
		return f.FieldName(), true
	}
	return "", false
}
