// Package domainerrors provides coded errors for domain validation failures.
//
// Domain code constructs these at trust boundaries so callers can branch on
// the failure kind with HasCode instead of matching message text. Import as
// dErrors by convention.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error. Codes are stable API: callers branch on
// them, so renaming one is a breaking change.
type Code string

const (
	// CodeInvalidFormat signals input that does not match the required shape.
	CodeInvalidFormat Code = "invalid_format"

	// CodeInvalidChecksum signals well-formed input whose check digit does
	// not verify.
	CodeInvalidChecksum Code = "invalid_checksum"

	// CodeNullInput signals an absent (nil) input where a value is required.
	CodeNullInput Code = "null_input"

	// CodeWrongType signals an input of an unsupported dynamic type.
	CodeWrongType Code = "wrong_type"

	// CodeInternal is the fallback for errors that carry no code.
	CodeInternal Code = "internal"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/errors.As chains through the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with a fixed message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// CodeOf extracts the code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
