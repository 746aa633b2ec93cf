package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/appdir/fs/core"
)

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{"Unknown", core.FSTypeUnknown, "unknown"},
		{"Local", core.FSTypeLocal, "local"},
		{"Memory", core.FSTypeMemory, "memory"},
		{"Invalid", core.FSType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fsType.String(); got != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, got, tt.expected)
			}
		})
	}
}

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}
		})
	}

	if errors.Is(core.ErrUnsupported, core.ErrNotExist) {
		t.Error("ErrUnsupported should not equal ErrNotExist")
	}
}
