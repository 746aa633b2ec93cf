//go:build !unix

package appdir

import "io/fs"

func ownerIDs(fs.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}
