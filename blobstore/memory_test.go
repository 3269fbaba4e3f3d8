package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a/one", []byte("hello")))

		got, err := store.Get(ctx, "a/one")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)
	})

	t.Run("GetCopies", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a/two", []byte("data")))

		got, _ := store.Get(ctx, "a/two")
		got[0] = 'X'

		again, _ := store.Get(ctx, "a/two")
		assert.Equal(t, []byte("data"), again)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "b/one", []byte("x")))

		names, err := store.List(ctx, "a/")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/one", "a/two"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a/one"))
		_, err := store.Get(ctx, "a/one")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting an absent blob is not an error.
		assert.NoError(t, store.Delete(ctx, "a/one"))
	})
}
