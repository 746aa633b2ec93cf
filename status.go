package appdir

import (
	"errors"
	"os"

	"github.com/jmgilman/go/appdir/fs/core"
)

// StatusChecker answers existence and access questions about paths.
// It never returns errors: a path that cannot be inspected reports false.
//
// When the provider implements core.AccessFS the platform decides, so the
// answer accounts for the calling user and its groups. Otherwise
// directories are judged by their owner permission bits and files by
// opening them.
type StatusChecker struct {
	fs     core.FS
	logger logger
}

// NewStatusChecker creates a StatusChecker. Only WithFS and WithLogger apply.
func NewStatusChecker(opts ...Option) *StatusChecker {
	o := buildOptions(opts)
	return newStatusChecker(o.fs, newLogger(o.logger))
}

func newStatusChecker(fsys core.FS, log logger) *StatusChecker {
	return &StatusChecker{fs: fsys, logger: log}
}

// Exists reports whether path names an existing file or directory.
func (s *StatusChecker) Exists(path string) bool {
	ok, err := s.fs.Exists(path)
	return err == nil && ok
}

// IsReadable reports whether path can be read. A directory is readable when
// it can be listed, a file when it can be opened for reading.
func (s *StatusChecker) IsReadable(path string) bool {
	s.logger.debug("checking readability", "path", path)

	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	if ok, decided := s.access(path, core.AccessRead); decided {
		return ok
	}
	if info.IsDir() {
		_, err = s.fs.ReadDir(path)
		return err == nil
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// IsWritable reports whether path can be written. A file is writable when it
// can be opened write-only, a directory when entries can be created in it.
// Files are never truncated by the check.
func (s *StatusChecker) IsWritable(path string) bool {
	s.logger.debug("checking writability", "path", path)

	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	if ok, decided := s.access(path, core.AccessWrite); decided {
		return ok
	}
	if info.IsDir() {
		return info.Mode().Perm()&0o200 != 0
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// access asks the provider's platform about mode. decided is false when the
// provider cannot answer.
func (s *StatusChecker) access(path string, mode core.AccessMode) (ok, decided bool) {
	a, isAccess := s.fs.(core.AccessFS)
	if !isAccess {
		return false, false
	}
	err := a.Access(path, mode)
	if errors.Is(err, core.ErrUnsupported) {
		return false, false
	}
	return err == nil, true
}
