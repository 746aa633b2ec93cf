package errors

import (
	"fmt"
	"strings"
)

// Error extends the standard error interface with the information needed to
// handle a failed file-system operation.
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Op returns the operation that failed (e.g. "read", "copy").
	// Empty if no operation has been attached.
	Op() string

	// Path returns the absolute path the operation failed on.
	// Empty if no path has been attached.
	Path() string

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// fileError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type fileError struct {
	code    ErrorCode
	op      string
	path    string
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] op path: message: cause", omitting empty parts.
func (e *fileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.code)
	if e.op != "" {
		b.WriteString(" ")
		b.WriteString(e.op)
	}
	if e.path != "" {
		b.WriteString(" ")
		b.WriteString(e.path)
	}
	if e.op != "" || e.path != "" {
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(e.message)
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

func (e *fileError) Code() ErrorCode { return e.code }
func (e *fileError) Op() string      { return e.op }
func (e *fileError) Path() string    { return e.path }
func (e *fileError) Message() string { return e.message }
func (e *fileError) Unwrap() error   { return e.cause }

// Context returns a copy of the context map, or nil if none is attached.
func (e *fileError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *fileError) clone() *fileError {
	c := *e
	c.context = copyContext(e.context)
	return &c
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
