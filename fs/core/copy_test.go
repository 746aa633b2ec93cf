package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/appdir/fs/billy"
	"github.com/jmgilman/go/appdir/fs/core"
)

func TestCopyFile(t *testing.T) {
	t.Run("copies content and permissions", func(t *testing.T) {
		fsys := billy.NewMemory()
		require.NoError(t, fsys.MkdirAll("/src", 0o755))
		require.NoError(t, fsys.MkdirAll("/dst", 0o755))
		require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("hello"), 0o600))

		require.NoError(t, core.CopyFile(fsys, "/src/a.txt", "/dst/a.txt"))

		data, err := fsys.ReadFile("/dst/a.txt")
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))

		info, err := fsys.Stat("/dst/a.txt")
		require.NoError(t, err)
		require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		fsys := billy.NewMemory()
		require.NoError(t, fsys.WriteFile("/a.txt", []byte("new"), 0o644))
		require.NoError(t, fsys.WriteFile("/b.txt", []byte("old"), 0o644))

		err := core.CopyFile(fsys, "/a.txt", "/b.txt")
		require.True(t, errors.Is(err, fs.ErrExist), "got %v", err)

		data, err := fsys.ReadFile("/b.txt")
		require.NoError(t, err)
		require.Equal(t, "old", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := billy.NewMemory()
		err := core.CopyFile(fsys, "/missing.txt", "/b.txt")
		require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

		exists, err := fsys.Exists("/b.txt")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("directory source", func(t *testing.T) {
		fsys := billy.NewMemory()
		require.NoError(t, fsys.MkdirAll("/dir", 0o755))

		err := core.CopyFile(fsys, "/dir", "/copy")
		require.True(t, errors.Is(err, core.ErrUnsupported), "got %v", err)
	})

	t.Run("local filesystem", func(t *testing.T) {
		dir := t.TempDir()
		fsys := billy.NewLocal()
		src := dir + "/a.txt"
		dst := dir + "/b.txt"
		require.NoError(t, fsys.WriteFile(src, []byte("on disk"), 0o644))

		require.NoError(t, core.CopyFile(fsys, src, dst))

		data, err := fsys.ReadFile(dst)
		require.NoError(t, err)
		require.Equal(t, "on disk", string(data))
	})
}
