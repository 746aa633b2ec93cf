//go:build unix

package appdir

import (
	"io/fs"
	"syscall"
)

func ownerIDs(info fs.FileInfo) (uid, gid uint32, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return 0, 0, false
	}
	return uint32(st.Uid), uint32(st.Gid), true
}
