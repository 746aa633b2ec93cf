package errors

import "errors"

// WithOp returns a copy of err with the failed operation and path attached.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WithOp(err, "rename", oldPath)
func WithOp(err error, op, path string) Error {
	if err == nil {
		return nil
	}

	e := toFileError(err)
	e.op = op
	e.path = path
	return e
}

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "destination", dst)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	e := toFileError(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, 1)
	}
	e.context[key] = value
	return e
}

// toFileError returns a private copy of err as a *fileError. Errors that did
// not originate from this package are wrapped with CodeUnknown.
func toFileError(err error) *fileError {
	if fe, ok := err.(*fileError); ok {
		return fe.clone()
	}

	var other Error
	if errors.As(err, &other) {
		return &fileError{
			code:    other.Code(),
			op:      other.Op(),
			path:    other.Path(),
			message: other.Message(),
			context: other.Context(),
			cause:   other.Unwrap(),
		}
	}

	return &fileError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
