package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "name must not be empty")
func New(code ErrorCode, message string) Error {
	return &fileError{
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unknown location %q", name)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}
