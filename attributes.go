package appdir

import (
	"fmt"
	"io"
	"io/fs"
	"maps"
	"slices"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jmgilman/go/appdir/fs/core"
)

// AttributeKey names an entry in Attributes.
type AttributeKey string

// Attribute keys. Owner and group IDs are present only when the provider
// exposes unix stat data; mimeType only for regular files.
const (
	AttrName             AttributeKey = "name"
	AttrSize             AttributeKey = "size"
	AttrModificationDate AttributeKey = "modificationDate"
	AttrType             AttributeKey = "type"
	AttrIsDirectory      AttributeKey = "isDirectory"
	AttrPermissions      AttributeKey = "posixPermissions"
	AttrMode             AttributeKey = "mode"
	AttrOwnerID          AttributeKey = "ownerAccountID"
	AttrGroupID          AttributeKey = "groupOwnerAccountID"
	AttrMIMEType         AttributeKey = "mimeType"
)

// AttributeType classifies the file an Attributes snapshot describes.
type AttributeType string

// File types reported under AttrType.
const (
	TypeRegular   AttributeType = "regular"
	TypeDirectory AttributeType = "directory"
	TypeSymlink   AttributeType = "symlink"
	TypeOther     AttributeType = "other"
)

// Attributes is a point-in-time snapshot of a file's metadata.
type Attributes map[AttributeKey]any

// Size returns the size in bytes, or 0 when absent.
func (a Attributes) Size() int64 {
	v, _ := a[AttrSize].(int64)
	return v
}

// ModTime returns the modification time, or the zero time when absent.
func (a Attributes) ModTime() time.Time {
	v, _ := a[AttrModificationDate].(time.Time)
	return v
}

// IsDir reports whether the snapshot describes a directory.
func (a Attributes) IsDir() bool {
	v, _ := a[AttrIsDirectory].(bool)
	return v
}

// Permissions returns the permission bits.
func (a Attributes) Permissions() fs.FileMode {
	v, _ := a[AttrPermissions].(fs.FileMode)
	return v
}

// MIMEType returns the detected content type, or "" when absent.
func (a Attributes) MIMEType() string {
	v, _ := a[AttrMIMEType].(string)
	return v
}

// Keys returns the keys present in a, sorted.
func (a Attributes) Keys() []AttributeKey {
	return slices.Sorted(maps.Keys(a))
}

// WriteTo writes one "key: value" line per attribute, sorted by key.
func (a Attributes) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, key := range a.Keys() {
		n, err := fmt.Fprintf(w, "%s: %s\n", key, a.Format(key))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Format returns the value of key as display text. Times use RFC 3339.
func (a Attributes) Format(key AttributeKey) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339)
	case fs.FileMode:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func fileType(mode fs.FileMode) AttributeType {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	default:
		return TypeOther
	}
}

// newAttributes builds a snapshot from info. name overrides info.Name(),
// which some providers report relative to their root.
func newAttributes(name string, info fs.FileInfo) Attributes {
	attrs := Attributes{
		AttrName:             name,
		AttrSize:             info.Size(),
		AttrModificationDate: info.ModTime(),
		AttrType:             fileType(info.Mode()),
		AttrIsDirectory:      info.IsDir(),
		AttrPermissions:      info.Mode().Perm(),
		AttrMode:             info.Mode(),
	}
	if uid, gid, ok := ownerIDs(info); ok {
		attrs[AttrOwnerID] = uid
		attrs[AttrGroupID] = gid
	}
	return attrs
}

// detectMIME sniffs the content type of the regular file at path.
func detectMIME(fsys core.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	return mtype.String(), nil
}
