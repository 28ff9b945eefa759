package filesystem_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/filesystem"
	"github.com/sourcepin/sourcepin/snapshot/values"
)

func testPin(t *testing.T) *entities.Pinfile {
	t.Helper()
	treeHash, err := values.ParseDigest("sha256:" + strings.Repeat("a1", 32))
	require.NoError(t, err)
	return &entities.Pinfile{
		Remote:     "https://example.com/org/repo.git",
		Requested:  "^1.0.0",
		Resolved:   "v1.2.0",
		Commit:     "0123456789012345678901234567890123456789",
		TreeHash:   treeHash,
		Excludes:   []string{"vendor/**"},
		Fetched:    time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		PinVersion: 1,
	}
}

func TestFilePinfileRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := filesystem.NewFilePinfileRepository()
	path := filepath.Join(t.TempDir(), "pins", "repo.pin.yaml")
	pin := testPin(t)

	require.NoError(t, repo.Save(context.Background(), path, pin))

	loaded, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, pin.Remote, loaded.Remote)
	assert.Equal(t, pin.Requested, loaded.Requested)
	assert.Equal(t, pin.Resolved, loaded.Resolved)
	assert.Equal(t, pin.Commit, loaded.Commit)
	assert.True(t, pin.TreeHash.Equals(loaded.TreeHash))
	assert.Equal(t, pin.Excludes, loaded.Excludes)
	assert.True(t, pin.Fetched.Equal(loaded.Fetched))
}

func TestFilePinfileRepository_LoadMissing(t *testing.T) {
	t.Parallel()

	repo := filesystem.NewFilePinfileRepository()

	pin, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "absent", "repo.pin.yaml"))
	require.NoError(t, err)
	assert.Nil(t, pin)
}

func TestFilePinfileRepository_SaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	repo := filesystem.NewFilePinfileRepository()
	pin := testPin(t)
	pin.TreeHash = values.Digest{}

	err := repo.Save(context.Background(), filepath.Join(t.TempDir(), "p.yaml"), pin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree hash")
}
