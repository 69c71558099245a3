package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledPassThrough(t *testing.T) {
	ctx := context.Background()
	store := NewThrottled(NewMemoryStore(), ThrottleConfig{
		OpsPerSec:     1000,
		MaxConcurrent: 2,
	})

	payload := []byte("data")
	require.NoError(t, store.Put(ctx, "a.json", payload))

	data, err := ReadAll(ctx, store, "a.json")
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json"}, names)

	require.NoError(t, store.Delete(ctx, "a.json"))
}

func TestThrottledUnlimited(t *testing.T) {
	ctx := context.Background()
	store := NewThrottled(NewMemoryStore(), ThrottleConfig{})

	require.NoError(t, store.Put(ctx, "a.json", []byte("data")))

	data, err := ReadAll(ctx, store, "a.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestThrottledCanceledContext(t *testing.T) {
	store := NewThrottled(NewMemoryStore(), ThrottleConfig{OpsPerSec: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Burn the initial rate token so the next call must wait, then observe
	// the canceled context short-circuiting it.
	_ = store.Put(context.Background(), "a.json", []byte("data"))

	err := store.Put(ctx, "b.json", []byte("data"))
	assert.Error(t, err)
}
