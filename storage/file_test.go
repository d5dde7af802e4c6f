package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/storage"
)

func TestFileStore(t *testing.T) {
	newStore := func(t *testing.T) *storage.FileStore {
		t.Helper()
		store, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)
		return store
	}

	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save("cart:abc-123", []byte(`[{"id":1}]`)))

		data, ok, err := store.Load("cart:abc-123")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":1}]`, string(data))
	})

	t.Run("AbsentKey", func(t *testing.T) {
		store := newStore(t)
		data, ok, err := store.Load("wishlist:nobody")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save("user:1", []byte(`{"id":1}`)))
		require.NoError(t, store.Save("user:1", []byte(`{"id":2}`)))

		data, ok, err := store.Load("user:1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"id":2}`, string(data))
	})

	t.Run("DeleteThenAbsent", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save("token:1", []byte("tok")))
		require.NoError(t, store.Delete("token:1"))

		_, ok, err := store.Load("token:1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DeleteAbsentIsNoop", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Delete("never-saved"))
	})

	t.Run("KeysWithDistinctSanitizedNames", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save("cart:a", []byte("1")))
		require.NoError(t, store.Save("wishlist:a", []byte("2")))

		data, ok, err := store.Load("cart:a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "1", string(data))
	})

	t.Run("SimilarKeysNeverShareAFile", func(t *testing.T) {
		store := newStore(t)
		// Same shape after naive underscore replacement; must stay apart.
		require.NoError(t, store.Save("account:a_b@x.com", []byte("underscore")))
		require.NoError(t, store.Save("account:a:b@x.com", []byte("colon")))

		data, ok, err := store.Load("account:a_b@x.com")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "underscore", string(data))

		data, ok, err = store.Load("account:a:b@x.com")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "colon", string(data))
	})
}
