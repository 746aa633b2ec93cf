//go:build !unix

package billy

import "github.com/jmgilman/go/appdir/fs/core"

func access(string, core.AccessMode) error {
	return core.ErrUnsupported
}
