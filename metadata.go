package appdir

import (
	"io/fs"
	"path/filepath"
	"slices"

	apperrors "github.com/jmgilman/go/appdir/errors"
	"github.com/jmgilman/go/appdir/fs/core"
)

// MetadataReader lists directories and reads file attributes.
type MetadataReader struct {
	fs     core.FS
	logger logger
}

// NewMetadataReader creates a MetadataReader. Only WithFS and WithLogger
// apply.
func NewMetadataReader(opts ...Option) *MetadataReader {
	o := buildOptions(opts)
	return newMetadataReader(o.fs, newLogger(o.logger))
}

func newMetadataReader(fsys core.FS, log logger) *MetadataReader {
	return &MetadataReader{fs: fsys, logger: log}
}

// List reports whether the directory at path has at least one entry. Each
// entry name is logged at debug level.
func (m *MetadataReader) List(path string) (bool, error) {
	names, err := m.Entries(path)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		m.logger.debug("directory entry", "path", path, "name", name)
	}
	return len(names) > 0, nil
}

// Entries returns the names of the entries of the directory at path, sorted.
func (m *MetadataReader) Entries(path string) ([]string, error) {
	info, err := m.fs.Stat(path)
	if err != nil {
		return nil, classifyError(OpList, path, err)
	}
	if !info.IsDir() {
		return nil, opError(OpList, path, apperrors.CodeInvalidInput, "not a directory")
	}

	entries, err := m.fs.ReadDir(path)
	if err != nil {
		err = classifyError(OpList, path, err)
		m.logger.operation(OpList, path, err)
		return nil, err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	slices.Sort(names)
	m.logger.operation(OpList, path, nil, "entries", len(names))
	return names, nil
}

// Attributes returns a metadata snapshot of path. Regular files also carry
// their detected MIME type. A symlink is described itself, not its target,
// when the provider implements core.LstatFS.
func (m *MetadataReader) Attributes(path string) (Attributes, error) {
	info, err := m.stat(path)
	if err != nil {
		return nil, classifyError(OpAttributes, path, err)
	}

	attrs := newAttributes(filepath.Base(path), info)
	if info.Mode().IsRegular() {
		mime, err := detectMIME(m.fs, path)
		if err != nil {
			m.logger.warn("mime detection failed", "path", path, "error", err)
		} else {
			attrs[AttrMIMEType] = mime
		}
	}
	return attrs, nil
}

func (m *MetadataReader) stat(path string) (fs.FileInfo, error) {
	if l, ok := m.fs.(core.LstatFS); ok {
		return l.Lstat(path)
	}
	return m.fs.Stat(path)
}
