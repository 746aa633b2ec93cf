package appdir

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// envPrefix is the prefix of the environment variables read by LoadRoots.
const envPrefix = "appdir"

// Roots holds the absolute base directories locations resolve against.
// Inbox has no root of its own; it is always Documents/Inbox.
type Roots struct {
	// Documents is the user documents directory (APPDIR_DOCUMENTS_DIR).
	Documents string `envconfig:"DOCUMENTS_DIR"`
	// Library is the per-user library directory (APPDIR_LIBRARY_DIR).
	Library string `envconfig:"LIBRARY_DIR"`
	// Temp is the temporary-files directory (APPDIR_TEMP_DIR).
	Temp string `envconfig:"TEMP_DIR"`
}

// DefaultRoots returns the platform directories for the current user.
//
// Documents comes from the XDG user-dirs configuration on Linux and the
// known folder on macOS and Windows. Library is ~/Library on macOS and the
// XDG data home elsewhere. Temp is os.TempDir().
func DefaultRoots() (Roots, error) {
	roots := platformRoots()
	if err := roots.validate(); err != nil {
		return Roots{}, apperrors.Wrap(err, apperrors.CodeIO, "cannot determine platform directories")
	}
	return roots.clean(), nil
}

// LoadRoots returns the platform roots with any APPDIR_DOCUMENTS_DIR,
// APPDIR_LIBRARY_DIR or APPDIR_TEMP_DIR overrides applied. Overrides must be
// absolute paths.
func LoadRoots() (Roots, error) {
	var overrides Roots
	if err := envconfig.Process(envPrefix, &overrides); err != nil {
		return Roots{}, apperrors.Wrap(err, apperrors.CodeInvalidInput, "failed to load directory overrides")
	}

	roots := platformRoots().merge(overrides)
	if err := roots.validate(); err != nil {
		return Roots{}, err
	}
	return roots.clean(), nil
}

func platformRoots() Roots {
	roots := Roots{
		Documents: xdg.UserDirs.Documents,
		Library:   xdg.DataHome,
		Temp:      os.TempDir(),
	}
	if runtime.GOOS == "darwin" && xdg.Home != "" {
		roots.Library = filepath.Join(xdg.Home, "Library")
	}
	return roots
}

// merge returns r with every non-empty field of o applied.
func (r Roots) merge(o Roots) Roots {
	if o.Documents != "" {
		r.Documents = o.Documents
	}
	if o.Library != "" {
		r.Library = o.Library
	}
	if o.Temp != "" {
		r.Temp = o.Temp
	}
	return r
}

func (r Roots) clean() Roots {
	return Roots{
		Documents: filepath.Clean(r.Documents),
		Library:   filepath.Clean(r.Library),
		Temp:      filepath.Clean(r.Temp),
	}
}

// validate checks every root is set and absolute.
func (r Roots) validate() error {
	for _, root := range []struct {
		name string
		path string
	}{
		{"documents", r.Documents},
		{"library", r.Library},
		{"temp", r.Temp},
	} {
		if root.path == "" {
			return apperrors.Newf(apperrors.CodeInvalidInput, "%s directory is not set", root.name)
		}
		if !filepath.IsAbs(root.path) {
			return apperrors.Newf(apperrors.CodeInvalidInput, "%s directory %q is not absolute", root.name, root.path)
		}
	}
	return nil
}
