package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/storage"
	"todo/internal/testutil"
)

func TestStore(t *testing.T) {
	testutil.StoreConformance(t, func(t *testing.T) storage.Store {
		s, err := New(filepath.Join(t.TempDir(), "store"))
		require.NoError(t, err)
		return s
	})
}

func TestStore_FileLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "TO_DO_STATE", []byte(`{"name":""}`)))

	data, err := os.ReadFile(filepath.Join(dir, "TO_DO_STATE.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":""}`, string(data))

	info, err := os.Stat(filepath.Join(dir, "TO_DO_STATE.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_InvalidKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		err := s.Set(context.Background(), key, []byte("x"))
		assert.Error(t, err, "key %q", key)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
