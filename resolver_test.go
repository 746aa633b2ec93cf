package appdir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	r, err := NewResolver(WithRoots(testRoots()))
	require.NoError(t, err)
	return r
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		loc  Location
		want string
	}{
		{Documents, filepath.Clean("/home/user/Documents")},
		{Inbox, filepath.Join("/home/user/Documents", "Inbox")},
		{Library, filepath.Clean("/home/user/Library")},
		{Temp, filepath.Clean("/tmp")},
	}

	for _, tt := range tests {
		t.Run(tt.loc.String(), func(t *testing.T) {
			got, err := r.Resolve(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := r.Resolve(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, got, again, "resolution must be stable")
		})
	}
}

func TestResolver_ResolveUnknown(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.Resolve(Location(42))
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestResolver_Join(t *testing.T) {
	r := newTestResolver(t)

	for _, loc := range Locations() {
		base, err := r.Resolve(loc)
		require.NoError(t, err)

		got, err := r.Join("notes.txt", loc)
		require.NoError(t, err)
		assert.Equal(t, base+string(filepath.Separator)+"notes.txt", got)
	}
}

func TestResolver_JoinFilesystemRoot(t *testing.T) {
	sep := string(filepath.Separator)
	r, err := NewResolver(WithRoots(Roots{Documents: sep, Library: sep, Temp: sep}))
	require.NoError(t, err)

	got, err := r.Join("a.txt", Library)
	require.NoError(t, err)
	assert.Equal(t, sep+"a.txt", got)
}

func TestResolver_JoinInvalidName(t *testing.T) {
	r := newTestResolver(t)

	for _, name := range []string{"", ".", "..", "a/b", "../etc", "a\x00b"} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Join(name, Documents)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidInput(err))

			var coded apperrors.Error
			require.ErrorAs(t, err, &coded)
			assert.Equal(t, string(OpJoin), coded.Op())
		})
	}
}

func TestResolver_Roots(t *testing.T) {
	r := newTestResolver(t)
	assert.Equal(t, testRoots().clean(), r.Roots())
}

func TestNewResolver_InvalidRoots(t *testing.T) {
	_, err := NewResolver(WithRoots(Roots{Documents: "docs", Library: "/lib", Temp: "/tmp"}))
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestNewResolver_WithResolver(t *testing.T) {
	r := newTestResolver(t)

	got, err := NewResolver(WithResolver(r), WithRoots(Roots{}))
	require.NoError(t, err)
	assert.Same(t, r, got)
}
