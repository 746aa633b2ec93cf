package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/appdir/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
// It keeps access to the underlying billy.Filesystem through Unwrap.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
}

// New wraps an existing billy.Filesystem. kind is reported by Type.
func New(bfs billy.Filesystem, kind core.FSType) *FS {
	return &FS{bfs: bfs, kind: kind}
}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/").
func NewLocal() *FS {
	return New(osfs.New("/"), core.FSTypeLocal)
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *FS {
	return New(memfs.New(), core.FSTypeMemory)
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the filesystem type given at construction.
func (f *FS) Type() core.FSType {
	return f.kind
}

// normalize converts paths to use forward slashes consistently.
// billy handles boundary checks itself.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	// billy returns []fs.FileInfo, convert to []fs.DirEntry
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bf, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	bf, err := f.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bf.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = bf.Write(data)
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// Rename renames (moves) oldpath to newpath.
func (f *FS) Rename(oldpath, newpath string) error {
	return f.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Lstat returns file metadata without following a final symlink.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(normalize(name))
}

// Access asks the platform whether the calling process holds mode on name.
// Only local filesystems support it; others return core.ErrUnsupported.
func (f *FS) Access(name string, mode core.AccessMode) error {
	if f.kind != core.FSTypeLocal {
		return &fs.PathError{Op: "access", Path: name, Err: core.ErrUnsupported}
	}
	path := filepath.Join(f.bfs.Root(), filepath.FromSlash(normalize(name)))
	if err := access(path, mode); err != nil {
		return &fs.PathError{Op: "access", Path: name, Err: err}
	}
	return nil
}

// Chroot returns a filesystem scoped to the given directory.
// The directory must exist.
func (f *FS) Chroot(dir string) (core.FS, error) {
	dir = normalize(dir)
	info, err := f.bfs.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "chroot", Path: dir, Err: errors.New("not a directory")}
	}
	chrootFS, err := f.bfs.Chroot(dir)
	if err != nil {
		return nil, err
	}
	return &FS{bfs: chrootFS, kind: f.kind}, nil
}

// Compile-time interface checks.
var (
	_ core.FS       = (*FS)(nil)
	_ core.AccessFS = (*FS)(nil)
	_ core.LstatFS  = (*FS)(nil)
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
	_ fs.ReadFileFS = (*FS)(nil)
)
