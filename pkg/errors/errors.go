// Package errors provides structured error types for spritegen.
//
// Every error produced by the generator, the config loader and the HTTP
// server carries a machine-readable Code so callers can branch on the kind of
// failure without string matching:
//
//	m, err := sprite.NewMask(cells, 4, 4)
//	if errors.Is(err, errors.ErrCodeInvalidMask) {
//	    // reject the template
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a failure. The HTTP server maps codes to status: the
// INVALID_* family is a 400, NOT_FOUND a 404, anything else a 500.
type Code string

const (
	// Rejected masks, options, requests and bodies.
	ErrCodeInvalidMask   Code = "INVALID_MASK"
	ErrCodeInvalidOption Code = "INVALID_OPTION"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Unknown preset or missing config file.
	ErrCodeNotFound Code = "NOT_FOUND"

	// Encoding, cache or I/O failures.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a Code, the message shown to clients, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes Cause to the standard errors package.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any *Error in err's tree, including every branch of a
// joined error, carries code.
func Is(err error, code Code) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		return e.Code == code || Is(e.Cause, code)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if Is(inner, code) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return Is(e.Unwrap(), code)
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage is the text the server puts in a JSON error body: the message
// without its code prefix, or err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
