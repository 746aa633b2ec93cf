// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the contracts appdir relies on: reads and writes of whole
// files, exclusive creation, not-exist and exist errors that match the io/fs
// sentinels, renames, removals and chrooted views.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// NewFS returns a fresh, empty filesystem for one test group.
// It receives the running test so providers can allocate t.TempDir().
type NewFS func(t *testing.T) core.FS

// TestSuite runs all conformance tests against a filesystem.
// Each group receives a fresh filesystem from newFS.
func TestSuite(t *testing.T, newFS NewFS) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS(t))
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS(t))
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newFS(t))
	})
	t.Run("ChrootFS", func(t *testing.T) {
		TestChrootFS(t, newFS(t))
	})
}
