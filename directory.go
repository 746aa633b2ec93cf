package appdir

import (
	"io"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// Directory binds the components of this package to a single Location.
// The location is fixed for the lifetime of the Directory.
type Directory struct {
	loc    Location
	path   string
	ops    *FileOperations
	status *StatusChecker
	meta   *MetadataReader
	logger logger
}

// NewDirectory creates a Directory for loc.
func NewDirectory(loc Location, opts ...Option) (*Directory, error) {
	o := buildOptions(opts)
	r, err := o.loadResolver()
	if err != nil {
		return nil, err
	}
	path, err := r.Resolve(loc)
	if err != nil {
		return nil, err
	}

	log := newLogger(o.logger).with("location", loc.String())
	return &Directory{
		loc:    loc,
		path:   path,
		ops:    newFileOperations(o.fs, r, log),
		status: newStatusChecker(o.fs, log),
		meta:   newMetadataReader(o.fs, log),
		logger: log,
	}, nil
}

// Location returns the bound location.
func (d *Directory) Location() Location { return d.loc }

// Path returns the absolute path of the bound location.
func (d *Directory) Path() string { return d.path }

// Join returns the absolute path of name inside the directory.
func (d *Directory) Join(name string) (string, error) {
	return d.ops.resolver.Join(name, d.loc)
}

// Ensure creates the directory if it does not exist.
func (d *Directory) Ensure() error {
	return d.ops.EnsureLocation(d.loc)
}

// Write writes content to name, creating or truncating it.
func (d *Directory) Write(content, name string) error {
	return d.ops.WriteFile(content, d.loc, name)
}

// Read returns the UTF-8 contents of name.
func (d *Directory) Read(name string) (string, error) {
	return d.ops.ReadFile(d.loc, name)
}

// Delete removes name.
func (d *Directory) Delete(name string) error {
	return d.ops.DeleteFile(d.loc, name)
}

// Exists reports whether name exists. Invalid names never exist.
func (d *Directory) Exists(name string) bool {
	path, err := d.Join(name)
	if err != nil {
		return false
	}
	return d.status.Exists(path)
}

// Rename renames oldName to newName.
func (d *Directory) Rename(oldName, newName string) error {
	return d.ops.RenameFile(d.loc, oldName, newName)
}

// ChangeExtension replaces the extension of name and returns the new name.
func (d *Directory) ChangeExtension(name, ext string) (string, error) {
	return d.ops.ChangeFileExtension(name, d.loc, ext)
}

// MoveTo moves name into another location.
func (d *Directory) MoveTo(name string, to Location) error {
	return d.ops.MoveFile(name, d.loc, to)
}

// CopyTo copies name into another location.
func (d *Directory) CopyTo(name string, to Location) error {
	return d.ops.CopyFile(name, d.loc, to)
}

// Attributes returns a metadata snapshot of name.
func (d *Directory) Attributes(name string) (Attributes, error) {
	path, err := d.Join(name)
	if err != nil {
		return nil, err
	}
	return d.meta.Attributes(path)
}

// ShowAttributes writes the attributes of name to w as sorted
// "key: value" lines.
func (d *Directory) ShowAttributes(w io.Writer, name string) error {
	attrs, err := d.Attributes(name)
	if err != nil {
		return err
	}
	if _, err := attrs.WriteTo(w); err != nil {
		return apperrors.Wrap(err, apperrors.CodeIO, "failed to write attributes")
	}
	return nil
}

// List reports whether the directory has at least one entry.
func (d *Directory) List() (bool, error) {
	return d.meta.List(d.path)
}

// Entries returns the sorted entry names of the directory.
func (d *Directory) Entries() ([]string, error) {
	return d.meta.Entries(d.path)
}

// Glob returns the paths inside the directory matching pattern, relative to
// the directory and sorted. Patterns use doublestar syntax, so "**" matches
// any number of path segments.
func (d *Directory) Glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, opError(OpGlob, d.path, apperrors.CodeInvalidInput, "invalid pattern %q", pattern)
	}

	scoped, err := d.ops.fs.Chroot(d.path)
	if err != nil {
		return nil, classifyError(OpGlob, d.path, err)
	}
	matches, err := doublestar.Glob(scoped, pattern)
	if err != nil {
		err = classifyError(OpGlob, d.path, err)
		d.logger.operation(OpGlob, d.path, err, "pattern", pattern)
		return nil, err
	}

	slices.Sort(matches)
	d.logger.operation(OpGlob, d.path, nil, "pattern", pattern, "matches", len(matches))
	return matches, nil
}
