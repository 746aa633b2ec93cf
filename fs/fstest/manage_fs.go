package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// TestManageFS tests management operations: Remove, Rename.
func TestManageFS(t *testing.T, filesystem core.FS) {
	t.Run("Remove", func(t *testing.T) {
		if err := filesystem.WriteFile("remove.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(): got error %v, want nil", err)
		}
		if exists, _ := filesystem.Exists("remove.txt"); exists {
			t.Error("Exists() after Remove() = true, want false")
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		if err := filesystem.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		if err := filesystem.WriteFile("old.txt", []byte("content"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("sub", 0o755); err != nil {
			t.Fatalf("MkdirAll(): setup failed: %v", err)
		}
		if err := filesystem.Rename("old.txt", "sub/new.txt"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		if exists, _ := filesystem.Exists("old.txt"); exists {
			t.Error("Exists(old.txt) after Rename() = true, want false")
		}
		data, err := filesystem.ReadFile("sub/new.txt")
		if err != nil {
			t.Fatalf("ReadFile(sub/new.txt): got error %v", err)
		}
		if string(data) != "content" {
			t.Errorf("ReadFile(sub/new.txt) = %q, want %q", data, "content")
		}
	})

	t.Run("RenameNotExist", func(t *testing.T) {
		if err := filesystem.Rename("ghost.txt", "other.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Rename(ghost.txt): got error %v, want fs.ErrNotExist", err)
		}
	})
}
