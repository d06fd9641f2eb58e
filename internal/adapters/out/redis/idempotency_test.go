package redis_test

import (
	"context"
	"testing"
	"time"

	redisadapter "ordertaking/internal/adapters/out/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*redisadapter.IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisadapter.NewIdempotencyStore(client, ttl), mr
}

func TestIdempotencyStore_TryLock(t *testing.T) {
	store, _ := newStore(t, time.Minute)

	locked, err := store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestIdempotencyStore_ScopesAreIndependent(t *testing.T) {
	store, _ := newStore(t, time.Minute)

	locked, err := store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	require.True(t, locked)

	locked, err = store.TryLock(context.Background(), "other-scope", "ORD-0001")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestIdempotencyStore_Release(t *testing.T) {
	store, _ := newStore(t, time.Minute)

	locked, err := store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	require.True(t, locked)

	require.NoError(t, store.Release(context.Background(), "place-order", "ORD-0001"))

	locked, err = store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestIdempotencyStore_ReleaseUnheldKey(t *testing.T) {
	store, _ := newStore(t, time.Minute)

	assert.NoError(t, store.Release(context.Background(), "place-order", "ORD-9999"))
}

func TestIdempotencyStore_LockExpires(t *testing.T) {
	store, mr := newStore(t, time.Second)

	locked, err := store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	require.True(t, locked)

	mr.FastForward(2 * time.Second)

	locked, err = store.TryLock(context.Background(), "place-order", "ORD-0001")
	require.NoError(t, err)
	assert.True(t, locked)
}
