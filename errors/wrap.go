package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// If err is already an Error, its operation, path and context are carried
// over to the new error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.Remove(path); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to remove file")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	wrapped := &fileError{
		code:    code,
		message: message,
		cause:   err,
	}

	var inner Error
	if errors.As(err, &inner) {
		wrapped.op = inner.Op()
		wrapped.path = inner.Path()
		wrapped.context = inner.Context()
	}

	return wrapped
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
