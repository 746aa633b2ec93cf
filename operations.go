package appdir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	apperrors "github.com/jmgilman/go/appdir/errors"
	"github.com/jmgilman/go/appdir/fs/core"
)

const (
	defaultFilePerm fs.FileMode = 0o644
	defaultDirPerm  fs.FileMode = 0o755
)

// FileOperations performs file CRUD inside locations.
//
// Names are always single path components joined onto a resolved location.
// Rename, move, copy and extension changes never replace an existing file;
// they fail with ALREADY_EXISTS instead.
type FileOperations struct {
	fs       core.FS
	resolver *Resolver
	logger   logger
}

// NewFileOperations creates a FileOperations.
func NewFileOperations(opts ...Option) (*FileOperations, error) {
	o := buildOptions(opts)
	r, err := o.loadResolver()
	if err != nil {
		return nil, err
	}
	return newFileOperations(o.fs, r, newLogger(o.logger)), nil
}

func newFileOperations(fsys core.FS, r *Resolver, log logger) *FileOperations {
	return &FileOperations{fs: fsys, resolver: r, logger: log}
}

// Resolver returns the resolver used to locate files.
func (o *FileOperations) Resolver() *Resolver {
	return o.resolver
}

// WriteFile writes content to name inside loc, creating the file or
// truncating an existing one. Missing parent directories are created.
func (o *FileOperations) WriteFile(content string, loc Location, name string) error {
	path, err := o.resolver.Join(name, loc)
	if err != nil {
		return o.done(OpWrite, path, err)
	}
	if !utf8.ValidString(content) {
		return o.done(OpWrite, path, opError(OpWrite, path, apperrors.CodeInvalidEncoding, "content is not valid UTF-8"))
	}

	if err := o.fs.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return o.done(OpWrite, path, classifyError(OpWrite, path, err))
	}
	if err := o.fs.WriteFile(path, []byte(content), defaultFilePerm); err != nil {
		return o.done(OpWrite, path, classifyError(OpWrite, path, err))
	}
	return o.done(OpWrite, path, nil, "bytes", len(content))
}

// ReadFile returns the contents of name inside loc. Content that is not
// valid UTF-8 fails with INVALID_ENCODING.
func (o *FileOperations) ReadFile(loc Location, name string) (string, error) {
	path, err := o.resolver.Join(name, loc)
	if err != nil {
		return "", o.done(OpRead, path, err)
	}

	data, err := o.fs.ReadFile(path)
	if err != nil {
		return "", o.done(OpRead, path, classifyError(OpRead, path, err))
	}
	text, err := decodeText(data)
	if err != nil {
		return "", o.done(OpRead, path, classifyError(OpRead, path, err))
	}
	return text, o.done(OpRead, path, nil, "bytes", len(data))
}

// DeleteFile removes name from loc.
func (o *FileOperations) DeleteFile(loc Location, name string) error {
	path, err := o.resolver.Join(name, loc)
	if err != nil {
		return o.done(OpDelete, path, err)
	}
	if err := o.fs.Remove(path); err != nil {
		return o.done(OpDelete, path, classifyError(OpDelete, path, err))
	}
	return o.done(OpDelete, path, nil)
}

// RenameFile renames oldName to newName within loc.
func (o *FileOperations) RenameFile(loc Location, oldName, newName string) error {
	src, dst, err := o.pair(oldName, loc, newName, loc)
	if err != nil {
		return o.done(OpRename, src, err)
	}
	return o.done(OpRename, src, o.relocate(OpRename, src, dst), "destination", dst)
}

// MoveFile moves name from one location to another, keeping its name.
func (o *FileOperations) MoveFile(name string, from, to Location) error {
	src, dst, err := o.pair(name, from, name, to)
	if err != nil {
		return o.done(OpMove, src, err)
	}
	return o.done(OpMove, src, o.relocate(OpMove, src, dst), "destination", dst)
}

// CopyFile copies name from one location to another, keeping its name and
// permissions. The destination is created exclusively.
func (o *FileOperations) CopyFile(name string, from, to Location) error {
	src, dst, err := o.pair(name, from, name, to)
	if err != nil {
		return o.done(OpCopy, src, err)
	}

	if err := o.fs.MkdirAll(filepath.Dir(dst), defaultDirPerm); err != nil {
		return o.done(OpCopy, src, classifyError(OpCopy, dst, err))
	}
	if err := core.CopyFile(o.fs, src, dst); err != nil {
		err = classifyError(OpCopy, src, err)
		return o.done(OpCopy, src, apperrors.WithContext(err, "destination", dst))
	}
	return o.done(OpCopy, src, nil, "destination", dst)
}

// ChangeFileExtension replaces the extension of name inside loc and returns
// the new name. Only the last extension is replaced ("a.tar.gz" becomes
// "a.tar.<ext>"); a leading dot never starts an extension. A leading dot on
// ext is ignored and an empty ext removes the extension.
func (o *FileOperations) ChangeFileExtension(name string, loc Location, ext string) (string, error) {
	newName, err := replaceExtension(name, ext)
	if err != nil {
		path, _ := o.resolver.Join(name, loc)
		return "", o.done(OpChangeExtension, path, apperrors.WithOp(err, string(OpChangeExtension), path))
	}

	src, dst, err := o.pair(name, loc, newName, loc)
	if err != nil {
		return "", o.done(OpChangeExtension, src, err)
	}
	if err := o.relocate(OpChangeExtension, src, dst); err != nil {
		return "", o.done(OpChangeExtension, src, err)
	}
	return newName, o.done(OpChangeExtension, src, nil, "destination", dst)
}

// EnsureLocation creates the directory of loc and any missing parents.
func (o *FileOperations) EnsureLocation(loc Location) error {
	path, err := o.resolver.Resolve(loc)
	if err != nil {
		return o.done(OpEnsure, path, err)
	}
	if err := o.fs.MkdirAll(path, defaultDirPerm); err != nil {
		return o.done(OpEnsure, path, classifyError(OpEnsure, path, err))
	}
	return o.done(OpEnsure, path, nil)
}

// pair joins a source and a destination name onto their locations.
func (o *FileOperations) pair(srcName string, srcLoc Location, dstName string, dstLoc Location) (string, string, error) {
	src, err := o.resolver.Join(srcName, srcLoc)
	if err != nil {
		return src, "", err
	}
	dst, err := o.resolver.Join(dstName, dstLoc)
	if err != nil {
		return src, dst, err
	}
	return src, dst, nil
}

// relocate renames src to dst unless dst already exists. Renaming a file
// onto itself is a no-op, and a dst that differs from src only in case and
// resolves to the same file (case-insensitive filesystems) is renamed. The
// check and the rename are separate calls, so a file created at dst in
// between may still be replaced.
func (o *FileOperations) relocate(op Operation, src, dst string) error {
	srcInfo, err := o.fs.Stat(src)
	if err != nil {
		return classifyError(op, src, err)
	}
	if src == dst {
		return nil
	}

	dstInfo, err := o.fs.Stat(dst)
	switch {
	case err == nil && strings.EqualFold(src, dst) && os.SameFile(srcInfo, dstInfo):
	case err == nil:
		return apperrors.WithContext(
			opError(op, src, apperrors.CodeAlreadyExists, "destination already exists"),
			"destination", dst,
		)
	case !errors.Is(err, fs.ErrNotExist):
		return apperrors.WithContext(classifyError(op, dst, err), "destination", dst)
	}

	if err := o.fs.MkdirAll(filepath.Dir(dst), defaultDirPerm); err != nil {
		return classifyError(op, dst, err)
	}
	if err := o.fs.Rename(src, dst); err != nil {
		return apperrors.WithContext(classifyError(op, src, err), "destination", dst)
	}
	return nil
}

// done logs the outcome of op and returns err unchanged.
func (o *FileOperations) done(op Operation, path string, err error, args ...any) error {
	o.logger.operation(op, path, err, args...)
	return err
}

// replaceExtension returns name with its last extension replaced by ext.
func replaceExtension(name, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if strings.ContainsRune(ext, '/') || strings.ContainsRune(ext, os.PathSeparator) || strings.ContainsRune(ext, 0) {
		return "", apperrors.Newf(apperrors.CodeInvalidInput, "extension %q must not contain a path separator", ext)
	}

	base := name
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		base = name[:i]
	}
	if ext == "" {
		return base, nil
	}
	return base + "." + ext, nil
}
