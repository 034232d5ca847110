package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStoreAt(path)

	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report absent")

	require.NoError(t, s.Set(ctx, "token", "jwt-abc"))
	require.NoError(t, s.Set(ctx, "tenant", `{"slug":"andes"}`))

	value, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-abc", value)

	// A fresh store on the same path sees the persisted values.
	reopened := NewFileStoreAt(path)
	value, ok, err = reopened.Get(ctx, "tenant")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"slug":"andes"}`, value)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStoreAt(path)

	require.NoError(t, s.Set(ctx, "token", "jwt-abc"))
	require.NoError(t, s.Set(ctx, "user", `{"id":"u1"}`))

	require.NoError(t, s.Delete(ctx, "token", "user"))

	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Emptying the store removes the file entirely.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting from an empty store is a no-op.
	require.NoError(t, s.Delete(ctx, "token"))
}

func TestFileStoreFilePermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStoreAt(path)

	require.NoError(t, s.Set(ctx, "token", "jwt-abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
