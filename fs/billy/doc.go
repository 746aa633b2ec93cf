// Package billy provides a go-billy-backed implementation of core.FS.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// filesystems behind a single adapter type, FS. The local provider is
// rooted at "/" so it accepts the absolute paths produced by the appdir
// resolver; the memory provider accepts the same absolute paths without
// touching disk, which makes it the default choice for tests.
//
// Usage:
//
//	// Create local filesystem
//	fsys := billy.NewLocal()
//	data, err := fsys.ReadFile("/home/me/Documents/notes.txt")
//
//	// Create in-memory filesystem
//	mem := billy.NewMemory()
//	err = mem.WriteFile("/docs/notes.txt", []byte("data"), 0o644)
//
//	// Wrap an existing billy.Filesystem
//	fsys = billy.New(osfs.New("/srv/data"), core.FSTypeLocal)
//
// # Thread Safety
//
// FS values are safe for concurrent use by multiple goroutines when the
// underlying billy.Filesystem is. File handles are not safe for concurrent use.
package billy
