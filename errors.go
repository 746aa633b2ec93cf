package appdir

import (
	"errors"
	"io/fs"
	"syscall"

	apperrors "github.com/jmgilman/go/appdir/errors"
	"github.com/jmgilman/go/appdir/fs/core"
)

// classifyError maps a provider error to a coded error carrying op and path.
// The original error stays in the chain for errors.Is/errors.As. Errors that
// already carry a code keep it; only a missing op and path are filled in.
func classifyError(op Operation, path string, err error) error {
	if err == nil {
		return nil
	}

	var coded apperrors.Error
	if errors.As(err, &coded) {
		if coded.Op() != "" {
			return err
		}
		return apperrors.WithOp(err, string(op), path)
	}

	var wrapped apperrors.Error
	switch {
	case errors.Is(err, fs.ErrNotExist):
		wrapped = apperrors.Wrap(err, apperrors.CodeNotFound, "no such file or directory")
	case errors.Is(err, fs.ErrExist):
		wrapped = apperrors.Wrap(err, apperrors.CodeAlreadyExists, "file already exists")
	case errors.Is(err, fs.ErrPermission):
		wrapped = apperrors.Wrap(err, apperrors.CodePermissionDenied, "permission denied")
	case errors.Is(err, syscall.ENOTDIR):
		wrapped = apperrors.Wrap(err, apperrors.CodeIO, "not a directory")
	case errors.Is(err, syscall.EISDIR):
		wrapped = apperrors.Wrap(err, apperrors.CodeIO, "is a directory")
	case errors.Is(err, core.ErrUnsupported):
		wrapped = apperrors.Wrap(err, apperrors.CodeIO, "operation not supported")
	default:
		wrapped = apperrors.Wrap(err, apperrors.CodeIO, "i/o error")
	}

	return apperrors.WithOp(wrapped, string(op), path)
}

// opError builds a coded error for a failure detected before any provider
// call was made.
func opError(op Operation, path string, code apperrors.ErrorCode, format string, args ...any) error {
	return apperrors.WithOp(apperrors.Newf(code, format, args...), string(op), path)
}
