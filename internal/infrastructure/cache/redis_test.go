package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "draft:s1", "manual_contact_id", "C100"))
	require.NoError(t, store.Set(ctx, "draft:s1", "manual_evaluator", "E1"))

	value, ok, err := store.Get(ctx, "draft:s1", "manual_contact_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "C100", value)
	assert.Equal(t, "E1", mr.HGet("session:draft:s1", "manual_evaluator"))

	_, ok, err = store.Get(ctx, "draft:s2", "manual_contact_id")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "draft:s1", "manual_contact_id", "manual_evaluator"))
	_, ok, err = store.Get(ctx, "draft:s1", "manual_contact_id")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "draft:s1"))
}

func TestRedisStore_Expiration(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ns", "k", "v"))
	assert.Equal(t, time.Minute, mr.TTL("session:ns"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "ns", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ConnectionFailure(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	mr.Close()

	_, _, err := store.Get(context.Background(), "ns", "k")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "ns", "k", "v"))
}
