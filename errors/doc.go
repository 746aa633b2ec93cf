// Package errors provides coded errors for file-system operations.
//
// Every failure produced by the appdir packages is an Error carrying an
// ErrorCode, the operation that failed, the path it failed on, and the
// underlying platform error. The package stays compatible with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap), so callers
// can still match io/fs sentinels such as fs.ErrNotExist through the chain.
//
// # Error Codes
//
//   - CodeNotFound: the file or directory does not exist
//   - CodeAlreadyExists: the destination of a create, copy or rename exists
//   - CodePermissionDenied: the platform refused access
//   - CodeInvalidInput: a name, extension or location failed validation
//   - CodeInvalidEncoding: file content is not valid UTF-8
//   - CodeIO: any other platform failure
//   - CodeUnknown: the error was not produced by this package
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "name must not be empty")
//	err = errors.WithOp(err, "write", "")
//
// Wrapping platform errors:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.WithOp(errors.Wrap(err, errors.CodeNotFound, "file does not exist"), "read", path)
//	}
//
// Inspecting errors:
//
//	if errors.IsNotFound(err) {
//	    // create it
//	}
//	switch errors.GetCode(err) {
//	case errors.CodeAlreadyExists:
//	    // pick another name
//	}
//
// # Context Metadata
//
// Additional debugging data can be attached without changing the message:
//
//	err = errors.WithContext(err, "charset", "ISO-8859-1")
//
// Errors are immutable; every helper returns a new value.
package errors
