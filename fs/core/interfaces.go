package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem interface consumed by appdir.
// FS explicitly embeds fs.FS for stdlib compatibility.
//
// Paths are slash-separated. Providers rooted at "/" accept absolute paths;
// chrooted views accept paths relative to their root.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	ChrootFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file must be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the file is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask of os.O_* values; providers must honour
	// O_CREATE, O_EXCL, O_TRUNC, O_RDONLY and O_WRONLY.
	//
	// If the file is created, perm is used (before umask).
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary
	// parents. If path is already a directory, MkdirAll does nothing.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error matching
	// fs.ErrNotExist.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	// Providers follow the platform: an existing newpath may be replaced.
	// Callers that need a no-overwrite policy must check first.
	Rename(oldpath, newpath string) error
}

// ChrootFS defines the ability to create scoped filesystem views.
type ChrootFS interface {
	// Chroot returns a filesystem scoped to the given directory.
	// All operations on the returned FS are relative to dir and cannot
	// access paths outside of it.
	Chroot(dir string) (FS, error)
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Syncer allows syncing file contents to stable storage.
//
// Not all File implementations support sync operations. Callers should use
// type assertion to check if this capability is available.
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// AccessMode is a bitmask of permissions checked by AccessFS.
type AccessMode uint32

const (
	// AccessRead checks that the caller may read the file or list the
	// directory.
	AccessRead AccessMode = 1 << iota
	// AccessWrite checks that the caller may write the file or create
	// entries in the directory.
	AccessWrite
)

// AccessFS is implemented by providers that can ask the platform whether
// the calling process holds a permission, as access(2) does. Providers
// without a platform behind them return an error matching ErrUnsupported.
type AccessFS interface {
	// Access returns nil if every permission in mode is granted. A denied
	// permission matches fs.ErrPermission.
	Access(name string, mode AccessMode) error
}

// LstatFS is implemented by providers that can describe a symbolic link
// itself rather than its target.
type LstatFS interface {
	// Lstat returns file metadata without following a final symlink.
	Lstat(name string) (fs.FileInfo, error)
}
