// Package core defines the file-system boundary used by appdir.
//
// The interfaces here are the subset of platform file operations the appdir
// facade needs: reading, writing, removing and renaming files, listing
// directories, and scoping a view to a single directory. Concrete providers
// live in sibling packages (see fs/billy); callers depend only on FS.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove, Rename
//   - ChrootFS: Chroot
//
// FS embeds fs.FS and its ReadDir and Stat signatures match fs.ReadDirFS and
// fs.StatFS, so any FS works with io/fs helpers and glob libraries:
//
//	matches, err := fs.Glob(filesystem, "*.txt")
//
// # Optional Capabilities
//
// Files returned by OpenFile may implement Syncer. Use a type assertion:
//
//	if s, ok := file.(core.Syncer); ok {
//	    err = s.Sync()
//	}
package core
