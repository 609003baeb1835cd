package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/storage"
)

// StoreConformance runs the behaviour every storage.Store backend must share.
// newStore must return an empty store; it is called once per subtest.
func StoreConformance(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "TO_DO_STATE")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		ok, err := s.Has(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "TO_DO_STATE", []byte(`{"name":"Ada"}`)))

		got, err := s.Get(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Ada"}`, string(got))

		ok, err := s.Has(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "TO_DO_STATE", []byte("first value, longer")))
		require.NoError(t, s.Set(ctx, "TO_DO_STATE", []byte("second")))

		got, err := s.Get(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		require.NoError(t, s.Delete(ctx, "a"))

		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		got, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, "2", string(got))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "TO_DO_STATE", []byte("x")))
		require.NoError(t, s.Delete(ctx, "TO_DO_STATE"))

		ok, err := s.Has(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete missing key", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, "TO_DO_STATE"))
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "TO_DO_STATE", []byte{}))

		ok, err := s.Has(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := s.Get(ctx, "TO_DO_STATE")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
