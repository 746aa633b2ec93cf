package appdir

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// Resolver maps locations to absolute paths.
//
// All locations are resolved once by NewResolver; the result never changes
// for the lifetime of the Resolver, so it is safe for concurrent use.
type Resolver struct {
	paths  map[Location]string
	logger logger
}

// NewResolver creates a Resolver. Roots come from WithRoots when given and
// from LoadRoots otherwise. WithFS has no effect on a Resolver.
func NewResolver(opts ...Option) (*Resolver, error) {
	o := buildOptions(opts)
	return o.loadResolver()
}

func newResolver(roots Roots, log logger) (*Resolver, error) {
	r := &Resolver{
		paths: map[Location]string{
			Documents: roots.Documents,
			Inbox:     filepath.Join(roots.Documents, inboxName),
			Library:   roots.Library,
			Temp:      roots.Temp,
		},
		logger: log,
	}
	for _, loc := range Locations() {
		r.logger.debug("resolved location", "location", loc.String(), "path", r.paths[loc])
	}
	return r, nil
}

// Resolve returns the absolute path of loc.
func (r *Resolver) Resolve(loc Location) (string, error) {
	path, ok := r.paths[loc]
	if !ok {
		return "", opError(OpResolve, "", apperrors.CodeInvalidInput, "unknown location %d", int(loc))
	}
	return path, nil
}

// Join returns the absolute path of name inside loc. The name must be a
// single path component.
func (r *Resolver) Join(name string, loc Location) (string, error) {
	base, err := r.Resolve(loc)
	if err != nil {
		return "", err
	}
	if err := validateName(name); err != nil {
		return "", apperrors.WithOp(err, string(OpJoin), base)
	}
	sep := string(filepath.Separator)
	return strings.TrimSuffix(base, sep) + sep + name, nil
}

// Roots returns the roots the Resolver was built from.
func (r *Resolver) Roots() Roots {
	return Roots{
		Documents: r.paths[Documents],
		Library:   r.paths[Library],
		Temp:      r.paths[Temp],
	}
}

// Directory returns a Directory bound to loc that shares this Resolver.
func (r *Resolver) Directory(loc Location, opts ...Option) (*Directory, error) {
	return NewDirectory(loc, append(opts, WithResolver(r))...)
}

// validateName rejects names that are not a single path component.
func validateName(name string) error {
	switch {
	case name == "":
		return apperrors.New(apperrors.CodeInvalidInput, "name must not be empty")
	case name == "." || name == "..":
		return apperrors.Newf(apperrors.CodeInvalidInput, "name %q is not a file name", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator):
		return apperrors.Newf(apperrors.CodeInvalidInput, "name %q must not contain a path separator", name)
	case strings.ContainsRune(name, 0):
		return apperrors.New(apperrors.CodeInvalidInput, "name must not contain NUL")
	}
	return nil
}
