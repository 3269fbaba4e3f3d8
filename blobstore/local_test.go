package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/q1.snap", []byte("payload")))

		got, err := store.Get(ctx, "snapshots/q1.snap")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/q1.snap", []byte("v2")))

		got, err := store.Get(ctx, "snapshots/q1.snap")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing.snap")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/q2.snap", []byte("x")))
		require.NoError(t, store.Put(ctx, "other/q3.snap", []byte("y")))

		names, err := store.List(ctx, "snapshots/")
		require.NoError(t, err)
		assert.Equal(t, []string{"snapshots/q1.snap", "snapshots/q2.snap"}, names)

		// Temp files from atomic writes never show up.
		for _, name := range names {
			assert.NotContains(t, name, ".tmp-")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "snapshots/q1.snap"))
		_, err := store.Get(ctx, "snapshots/q1.snap")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting an absent blob is not an error.
		assert.NoError(t, store.Delete(ctx, "snapshots/q1.snap"))
	})
}
