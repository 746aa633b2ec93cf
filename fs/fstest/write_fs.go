package fstest

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// TestWriteFS tests write operations: OpenFile, WriteFile, MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("file.txt", []byte("long content"), 0o644); err != nil {
			t.Fatalf("WriteFile(): got error %v, want nil", err)
		}
		if err := filesystem.WriteFile("file.txt", []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile(): got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("file.txt")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if string(data) != "short" {
			t.Errorf("ReadFile() = %q, want %q", data, "short")
		}
	})

	t.Run("OpenFileExclusive", func(t *testing.T) {
		f, err := filesystem.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(O_EXCL) on new file: got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("first")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}

		_, err = filesystem.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(O_EXCL) on existing file: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("OpenFileWithoutCreate", func(t *testing.T) {
		_, err := filesystem.OpenFile("absent.txt", os.O_WRONLY, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(O_WRONLY) on missing file: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(a/b/c): got error %v, want nil", err)
		}
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll(a/b/c) twice: got error %v, want nil", err)
		}
		info, err := filesystem.Stat("a/b/c")
		if err != nil {
			t.Fatalf("Stat(a/b/c): got error %v", err)
		}
		if !info.IsDir() {
			t.Error("Stat(a/b/c): IsDir() = false, want true")
		}
	})
}
