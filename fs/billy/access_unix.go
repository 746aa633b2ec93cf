//go:build unix

package billy

import (
	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/appdir/fs/core"
)

// access checks mode against the real user and group IDs with access(2).
func access(path string, mode core.AccessMode) error {
	var how uint32
	if mode&core.AccessRead != 0 {
		how |= unix.R_OK
	}
	if mode&core.AccessWrite != 0 {
		how |= unix.W_OK
	}
	if how == 0 {
		how = unix.F_OK
	}
	return unix.Access(path, how)
}
