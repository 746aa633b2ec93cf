package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodeNotFound indicates the file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target of a create, copy or rename
	// already exists and will not be overwritten.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermissionDenied indicates the platform refused access to the path.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeInvalidInput indicates a name, extension, location or path failed
	// validation before any platform call was made.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidEncoding indicates file content could not be decoded as UTF-8.
	CodeInvalidEncoding ErrorCode = "INVALID_ENCODING"

	// CodeIO indicates any other platform failure (disk full, busy, not a
	// directory, unsupported by the provider...).
	CodeIO ErrorCode = "IO_ERROR"

	// CodeUnknown indicates an error that did not originate from this package.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the code as a string.
func (c ErrorCode) String() string {
	return string(c)
}
