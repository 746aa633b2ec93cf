package appdir

import (
	"log/slog"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// Operation names a file-system operation for logs and errors.
type Operation string

// Operation constants used in log records and Error.Op().
const (
	OpResolve         Operation = "resolve"
	OpJoin            Operation = "join"
	OpWrite           Operation = "write"
	OpRead            Operation = "read"
	OpDelete          Operation = "delete"
	OpRename          Operation = "rename"
	OpMove            Operation = "move"
	OpCopy            Operation = "copy"
	OpChangeExtension Operation = "change_extension"
	OpEnsure          Operation = "ensure"
	OpList            Operation = "list"
	OpAttributes      Operation = "attributes"
	OpGlob            Operation = "glob"
)

// logger wraps slog for the appdir components.
// The zero value and a nil *slog.Logger both discard everything.
type logger struct {
	impl *slog.Logger
}

func newLogger(l *slog.Logger) logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return logger{impl: l}
}

func (l logger) debug(msg string, args ...any) {
	if l.impl != nil {
		l.impl.Debug(msg, args...)
	}
}

func (l logger) warn(msg string, args ...any) {
	if l.impl != nil {
		l.impl.Warn(msg, args...)
	}
}

// with returns a logger with additional context fields.
func (l logger) with(args ...any) logger {
	if l.impl == nil {
		return l
	}
	return logger{impl: l.impl.With(args...)}
}

// operation records the outcome of a file-system operation. Successes are
// logged at debug level, failures at warn level with the error code.
func (l logger) operation(op Operation, path string, err error, args ...any) {
	fields := make([]any, 0, len(args)+6)
	fields = append(fields, "operation", string(op), "path", path)
	fields = append(fields, args...)

	if err != nil {
		fields = append(fields, "code", apperrors.GetCode(err).String(), "error", err.Error())
		l.warn("file operation failed", fields...)
		return
	}
	l.debug("file operation completed", fields...)
}
