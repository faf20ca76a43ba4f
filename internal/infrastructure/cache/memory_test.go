package cache

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "draft:a", "manual_transcript", "Agent: hi"))

	value, ok, err := store.Get(ctx, "draft:a", "manual_transcript")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Agent: hi", value)

	_, ok, err = store.Get(ctx, "draft:b", "manual_transcript")
	require.NoError(t, err)
	assert.False(t, ok, "namespaces must be isolated")

	require.NoError(t, store.Delete(ctx, "draft:a", "manual_transcript", "missing"))
	_, ok, _ = store.Get(ctx, "draft:a", "manual_transcript")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Expiration(t *testing.T) {
	defer goleak.VerifyNone(t)

	mock := clock.NewMock()
	store := NewMemoryStoreWithClock(time.Minute, mock)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ns", "k", "v"))

	mock.Add(30 * time.Second)
	require.NoError(t, store.Set(ctx, "ns", "other", "v2"))

	mock.Add(45 * time.Second)
	value, ok, err := store.Get(ctx, "ns", "k")
	require.NoError(t, err)
	assert.True(t, ok, "a write refreshes the whole namespace")
	assert.Equal(t, "v", value)

	mock.Add(time.Minute)
	_, ok, _ = store.Get(ctx, "ns", "k")
	assert.False(t, ok)

	store.removeExpired()
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_SetAfterExpiryStartsFresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	mock := clock.NewMock()
	store := NewMemoryStoreWithClock(time.Minute, mock)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ns", "old", "v"))
	mock.Add(2 * time.Minute)
	require.NoError(t, store.Set(ctx, "ns", "new", "v"))

	_, ok, _ := store.Get(ctx, "ns", "old")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "ns", "new")
	assert.True(t, ok)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStore(time.Minute)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
