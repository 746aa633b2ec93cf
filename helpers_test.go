package appdir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/appdir/fs/billy"
	"github.com/jmgilman/go/appdir/fs/core"
)

func testRoots() Roots {
	return Roots{
		Documents: "/home/user/Documents",
		Library:   "/home/user/Library",
		Temp:      "/tmp",
	}
}

// newMemFS returns an in-memory filesystem with the test roots created.
func newMemFS(t *testing.T) core.FS {
	t.Helper()

	fsys := billy.NewMemory()
	roots := testRoots()
	for _, dir := range []string{roots.Documents, roots.Library, roots.Temp} {
		require.NoError(t, fsys.MkdirAll(dir, 0o755))
	}
	return fsys
}

func newMemOps(t *testing.T) (*FileOperations, core.FS) {
	t.Helper()

	fsys := newMemFS(t)
	ops, err := NewFileOperations(WithFS(fsys), WithRoots(testRoots()))
	require.NoError(t, err)
	return ops, fsys
}

// localRoots returns roots inside a fresh temporary directory.
func localRoots(t *testing.T) Roots {
	t.Helper()

	base := t.TempDir()
	return Roots{
		Documents: filepath.Join(base, "Documents"),
		Library:   filepath.Join(base, "Library"),
		Temp:      filepath.Join(base, "tmp"),
	}
}

func newLocalOps(t *testing.T) *FileOperations {
	t.Helper()

	ops, err := NewFileOperations(WithFS(billy.NewLocal()), WithRoots(localRoots(t)))
	require.NoError(t, err)
	for _, loc := range Locations() {
		require.NoError(t, ops.EnsureLocation(loc))
	}
	return ops
}
