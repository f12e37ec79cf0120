// Package apperr provides the typed errors surfaced by the API boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for HTTP mapping and logging.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeExtraction   Code = "EXTRACTION_FAILED"
	CodePersistence  Code = "PERSISTENCE_FAILED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a classified application error. Message is safe to return to the
// caller; Err carries the underlying cause for the operator log.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a user-correctable request problem.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized reports a missing or incorrect admin token.
func Unauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Message: "Unauthorized"}
}

// NotFound reports an unknown resource id.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Extraction reports a document with no recoverable text.
func Extraction(message string, err error) *Error {
	return &Error{Code: CodeExtraction, Message: message, Err: err}
}

// Internal reports an unexpected processing failure the caller cannot
// correct by changing the request.
func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// Persistence reports a failed atomic write; the operation is not applied.
func Persistence(err error) *Error {
	return &Error{Code: CodePersistence, Message: "Failed to save data", Err: err}
}

// CodeOf extracts the classification from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
