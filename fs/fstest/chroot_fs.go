package fstest

import (
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// TestChrootFS tests scoped filesystem views.
func TestChrootFS(t *testing.T, filesystem core.FS) {
	if err := filesystem.MkdirAll("scope/inner", 0o755); err != nil {
		t.Fatalf("MkdirAll(): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("scope/inner/file.txt", []byte("scoped"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("outside.txt", []byte("outside"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}

	scoped, err := filesystem.Chroot("scope")
	if err != nil {
		t.Fatalf("Chroot(scope): got error %v, want nil", err)
	}

	t.Run("ReadsRelativeToRoot", func(t *testing.T) {
		data, err := scoped.ReadFile("inner/file.txt")
		if err != nil {
			t.Fatalf("ReadFile(inner/file.txt): got error %v", err)
		}
		if string(data) != "scoped" {
			t.Errorf("ReadFile() = %q, want %q", data, "scoped")
		}
	})

	t.Run("WritesVisibleToParent", func(t *testing.T) {
		if err := scoped.WriteFile("new.txt", []byte("n"), 0o644); err != nil {
			t.Fatalf("WriteFile(new.txt): got error %v", err)
		}
		if exists, _ := filesystem.Exists("scope/new.txt"); !exists {
			t.Error("parent Exists(scope/new.txt) = false, want true")
		}
	})

	t.Run("CannotSeeOutside", func(t *testing.T) {
		if exists, _ := scoped.Exists("outside.txt"); exists {
			t.Error("scoped Exists(outside.txt) = true, want false")
		}
	})

	t.Run("ReadDirRoot", func(t *testing.T) {
		entries, err := scoped.ReadDir(".")
		if err != nil {
			t.Fatalf("ReadDir(.): got error %v", err)
		}
		if len(entries) == 0 {
			t.Error("ReadDir(.) returned no entries")
		}
	})

	t.Run("TypePreserved", func(t *testing.T) {
		if scoped.Type() != filesystem.Type() {
			t.Errorf("Chroot().Type() = %s, want %s", scoped.Type(), filesystem.Type())
		}
	})

	t.Run("MissingDir", func(t *testing.T) {
		if _, err := filesystem.Chroot("does/not/exist"); err == nil {
			t.Error("Chroot(does/not/exist): got nil error, want error")
		}
	})
}
