package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CopyFile copies the regular file src to dst within a single FS.
//
// The destination is created with O_EXCL, so CopyFile never overwrites an
// existing file; in that case the returned error matches fs.ErrExist. The
// source permission bits are applied to the new file. If the copy fails
// after dst was created, the partial file is removed.
//
// Both handles are closed before CopyFile returns. When the destination
// implements Syncer, its contents are synced before closing.
//
// Example:
//
//	err := core.CopyFile(filesystem, "/docs/a.txt", "/tmp/a.txt")
//	if errors.Is(err, fs.ErrExist) {
//	    // destination taken
//	}
func CopyFile(fsys FS, src, dst string) (err error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("not a regular file: %w", ErrUnsupported)}
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = fsys.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}

	if s, ok := out.(Syncer); ok {
		if err = s.Sync(); err != nil && !errors.Is(err, ErrUnsupported) {
			return err
		}
		err = nil
	}

	return nil
}
