// Package redis implements the idempotency store on Redis. A lock is one
// SETNX key with a TTL; the TTL bounds how long an abandoned claim can block
// resubmission if a release is lost.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore implements ports.IdempotencyStore on a Redis client.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates a store claiming keys for the given duration.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		ttl:    ttl,
	}
}

// TryLock claims the key within the scope. Returns false when the key is
// already held.
func (s *IdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	return s.client.SetNX(ctx, lockKey(scope, key), "1", s.ttl).Result()
}

// Release frees a previously claimed key. Releasing a key that is not held is
// a no-op.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return s.client.Del(ctx, lockKey(scope, key)).Err()
}

func lockKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
