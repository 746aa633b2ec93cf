package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/appdir"
	apperrors "github.com/jmgilman/go/appdir/errors"
	"github.com/jmgilman/go/appdir/fs/billy"
	"github.com/jmgilman/go/appdir/fs/core"
)

func newTestFS(t *testing.T) core.FS {
	t.Helper()

	fsys := billy.NewMemory()
	for _, dir := range []string{"/docs", "/lib", "/tmp"} {
		require.NoError(t, fsys.MkdirAll(dir, 0o755))
	}
	return fsys
}

// run executes the command tree against fsys and returns standard output.
func run(t *testing.T, fsys core.FS, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(
		appdir.WithFS(fsys),
		appdir.WithRoots(appdir.Roots{Documents: "/docs", Library: "/lib", Temp: "/tmp"}),
	)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPaths(t *testing.T) {
	out, err := run(t, newTestFS(t), "", "paths")
	require.NoError(t, err)

	assert.Contains(t, out, "/docs/Inbox")
	assert.Contains(t, out, "/lib")
	assert.Contains(t, out, "tmp")
}

func TestWriteCatLs(t *testing.T) {
	fsys := newTestFS(t)

	_, err := run(t, fsys, "", "write", "a.txt", "hello")
	require.NoError(t, err)
	_, err = run(t, fsys, "from stdin", "write", "b.txt")
	require.NoError(t, err)

	out, err := run(t, fsys, "", "cat", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = run(t, fsys, "", "cat", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", out)

	out, err = run(t, fsys, "", "ls")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nb.txt\n", out)
}

func TestMoveCopyRenameExt(t *testing.T) {
	fsys := newTestFS(t)

	_, err := run(t, fsys, "", "--dir", "tmp", "write", "a.txt", "x")
	require.NoError(t, err)
	_, err = run(t, fsys, "", "-d", "tmp", "cp", "a.txt", "library")
	require.NoError(t, err)
	_, err = run(t, fsys, "", "-d", "tmp", "mv", "a.txt", "inbox")
	require.NoError(t, err)
	_, err = run(t, fsys, "", "-d", "inbox", "rename", "a.txt", "b.txt")
	require.NoError(t, err)

	out, err := run(t, fsys, "", "-d", "inbox", "ext", "b.txt", "md")
	require.NoError(t, err)
	assert.Equal(t, "b.md\n", out)

	for _, path := range []string{"/lib/a.txt", "/docs/Inbox/b.md"} {
		ok, err := fsys.Exists(path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}

	_, err = run(t, fsys, "", "-d", "inbox", "rm", "b.md")
	require.NoError(t, err)
}

func TestStatAndGlob(t *testing.T) {
	fsys := newTestFS(t)
	require.NoError(t, fsys.WriteFile("/lib/notes/a.md", []byte("# a"), 0o644))

	out, err := run(t, fsys, "", "-d", "library", "glob", "**/*.md")
	require.NoError(t, err)
	assert.Equal(t, "notes/a.md\n", out)

	out, err = run(t, fsys, "", "-d", "library", "stat", "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "isDirectory")
	assert.Contains(t, out, "true")
}

func TestErrors(t *testing.T) {
	fsys := newTestFS(t)

	_, err := run(t, fsys, "", "cat", "missing.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "[NOT_FOUND]")

	_, err = run(t, fsys, "", "-d", "desktop", "ls")
	assert.True(t, apperrors.IsInvalidInput(err))
}
