//go:build unix

package appdir

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// Two names for one file stand in for a case-insensitive filesystem, where
// "a.TXT" and "a.txt" resolve to the same entry.
func TestFileOperations_ChangeFileExtensionCaseOnly(t *testing.T) {
	ops := newLocalOps(t)
	require.NoError(t, ops.WriteFile("x", Documents, "a.TXT"))

	upper, err := ops.Resolver().Join("a.TXT", Documents)
	require.NoError(t, err)
	lower, err := ops.Resolver().Join("a.txt", Documents)
	require.NoError(t, err)
	if _, err := os.Stat(lower); os.IsNotExist(err) {
		require.NoError(t, os.Link(upper, lower))
	}

	name, err := ops.ChangeFileExtension("a.TXT", Documents, "txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", name)
}

func TestFileOperations_RenameHardLinkNoOverwrite(t *testing.T) {
	ops := newLocalOps(t)
	require.NoError(t, ops.WriteFile("x", Documents, "a.txt"))

	src, err := ops.Resolver().Join("a.txt", Documents)
	require.NoError(t, err)
	dst, err := ops.Resolver().Join("b.txt", Documents)
	require.NoError(t, err)
	require.NoError(t, os.Link(src, dst))

	err = ops.RenameFile(Documents, "a.txt", "b.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err), "only case-only names may share a file")
}
