package appdir

import (
	"strings"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// Location identifies one of the well-known per-user directories.
type Location int

const (
	// Documents is the user's documents directory.
	Documents Location = iota
	// Inbox is the "Inbox" sub-directory of Documents.
	Inbox
	// Library is the per-user library (application data) directory.
	Library
	// Temp is the platform temporary-files directory.
	Temp
)

// inboxName is the path component appended to Documents for Inbox.
const inboxName = "Inbox"

var locationNames = map[Location]string{
	Documents: "Documents",
	Inbox:     inboxName,
	Library:   "Library",
	Temp:      "tmp",
}

// String returns the directory name associated with the location.
func (l Location) String() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether l is one of the defined locations.
func (l Location) Valid() bool {
	_, ok := locationNames[l]
	return ok
}

// Locations returns all defined locations in declaration order.
func Locations() []Location {
	return []Location{Documents, Inbox, Library, Temp}
}

// ParseLocation returns the Location with the given name. Matching is case
// insensitive and accepts "temp" as well as "tmp".
func ParseLocation(name string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "documents":
		return Documents, nil
	case "inbox":
		return Inbox, nil
	case "library":
		return Library, nil
	case "tmp", "temp":
		return Temp, nil
	}
	return 0, apperrors.Newf(apperrors.CodeInvalidInput, "unknown location %q", name)
}
