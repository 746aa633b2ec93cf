// Package appdir provides a small facade over the per-user directories an
// application stores its files in.
//
// Four logical locations are supported: Documents, Inbox (a sub-directory
// of Documents), Library and Temp. A Resolver maps each location to an
// absolute path once, and the components built on top of it operate on
// those paths through a core.FS provider:
//
//   - Resolver: Resolve a Location, Join a file name onto it
//   - StatusChecker: Exists, IsReadable, IsWritable
//   - MetadataReader: List, Entries, Attributes
//   - FileOperations: WriteFile, ReadFile, DeleteFile, RenameFile, MoveFile,
//     CopyFile, ChangeFileExtension, EnsureLocation
//   - Directory: all of the above bound to a single Location
//
// # Usage
//
//	docs, err := appdir.NewDirectory(appdir.Documents)
//	if err != nil {
//	    return err
//	}
//	if err := docs.Write("hello", "greeting.txt"); err != nil {
//	    return err
//	}
//	text, err := docs.Read("greeting.txt")
//
// # Errors
//
// Every failure is an errors.Error from github.com/jmgilman/go/appdir/errors
// carrying a code (NOT_FOUND, ALREADY_EXISTS, PERMISSION_DENIED,
// INVALID_INPUT, INVALID_ENCODING, IO_ERROR), the operation and the path.
// Nothing in this package panics or exits on a platform failure.
//
//	if _, err := docs.Read("missing.txt"); apperrors.IsNotFound(err) {
//	    // create it
//	}
//
// # Names
//
// File names are single path components. Empty names, "." and "..", and
// names containing a path separator or NUL are rejected with INVALID_INPUT
// before any file-system call is made, so a name can never escape its
// location.
//
// # Overwrites
//
// RenameFile, MoveFile, ChangeFileExtension and CopyFile never replace an
// existing destination; they fail with ALREADY_EXISTS instead. WriteFile
// always creates or truncates.
//
// # Testing
//
// Pass an in-memory filesystem and fixed roots to keep tests off disk:
//
//	ops, err := appdir.NewFileOperations(
//	    appdir.WithFS(billy.NewMemory()),
//	    appdir.WithRoots(appdir.Roots{Documents: "/docs", Library: "/lib", Temp: "/tmp"}),
//	)
package appdir
