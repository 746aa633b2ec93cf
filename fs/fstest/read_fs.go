package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/b.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/b.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/a.txt", []byte("a"), 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/a.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/b.txt")
		if err != nil {
			t.Fatalf("Open(testdir/b.txt): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("Read(): got %q, want %q", data, testContent)
		}
	})

	t.Run("Stat", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/b.txt")
		if err != nil {
			t.Fatalf("Stat(testdir/b.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Error("Stat(testdir/b.txt): IsDir() = true, want false")
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(testdir/b.txt): Size() = %d, want %d", info.Size(), len(testContent))
		}

		info, err = filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat(testdir): IsDir() = false, want true")
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
		}
		if len(entries) != 2 {
			t.Fatalf("ReadDir(testdir): got %d entries, want 2", len(entries))
		}
		if entries[0].Name() != "a.txt" || entries[1].Name() != "b.txt" {
			t.Errorf("ReadDir(testdir): got [%s %s], want [a.txt b.txt]", entries[0].Name(), entries[1].Name())
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/b.txt")
		if err != nil {
			t.Fatalf("ReadFile(testdir/b.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(): got %q, want %q", data, testContent)
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		if _, err := filesystem.Open("missing.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
		if _, err := filesystem.Stat("missing.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
		if _, err := filesystem.ReadFile("missing.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir":       true,
			"testdir/a.txt": true,
			"missing.txt":   false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
			}
			if got != want {
				t.Errorf("Exists(%q) = %v, want %v", name, got, want)
			}
		}
	})
}
