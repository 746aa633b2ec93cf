//go:build unix

package appdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/appdir/fs/billy"
)

func TestStatusChecker_LocalDirectoryAccess(t *testing.T) {
	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	s := NewStatusChecker(WithFS(billy.NewLocal()))

	for _, dir := range []string{locked, "/", t.TempDir()} {
		t.Run(dir, func(t *testing.T) {
			want := unix.Access(dir, unix.W_OK) == nil
			assert.Equal(t, want, s.IsWritable(dir))
			assert.True(t, s.IsReadable(dir))
		})
	}

	if os.Geteuid() == 0 {
		assert.True(t, s.IsWritable(locked), "root may create entries in a 0555 directory")
	} else {
		assert.False(t, s.IsWritable(locked))
		assert.False(t, s.IsWritable("/"), "the filesystem root belongs to root")
	}
}

func TestStatusChecker_LocalChroot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	scoped, err := billy.NewLocal().Chroot(dir)
	require.NoError(t, err)

	s := NewStatusChecker(WithFS(scoped))
	assert.True(t, s.IsReadable("a.txt"))
	assert.True(t, s.IsWritable("a.txt"))
	assert.False(t, s.IsWritable("missing.txt"))
}
