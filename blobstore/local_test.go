package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	payload := []byte(`{"images":[]}`)
	require.NoError(t, store.Put(ctx, "annotations.json", payload))

	data, err := ReadAll(ctx, store, "annotations.json")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestLocalStoreMappable(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	payload := []byte("mapped contents")
	require.NoError(t, store.Put(ctx, "blob.bin", payload))

	b, err := store.Open(ctx, "blob.bin")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, int64(len(payload)), b.Size())

	m, ok := b.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestLocalStoreNestedPut(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "train/annotations.json", []byte("a")))
	require.NoError(t, store.Put(ctx, "val/annotations.json", []byte("b")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"train/annotations.json", "val/annotations.json"}, names)

	names, err = store.List(ctx, "val/")
	require.NoError(t, err)
	assert.Equal(t, []string{"val/annotations.json"}, names)
}

func TestLocalStoreOverwriteAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "a.json", []byte("v1")))
	require.NoError(t, store.Put(ctx, "a.json", []byte("v2")))

	data, err := ReadAll(ctx, store, "a.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	require.NoError(t, store.Delete(ctx, "a.json"))
	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, "a.json"))

	_, err = store.Open(ctx, "a.json")
	assert.Error(t, err)
}
