package ports

import "context"

// IdempotencyStore guards against double submission of the same order id.
// TryLock claims the key for the given scope; a second claim for a key that
// is still held fails. Release frees the key again, so a rejected order can
// be resubmitted after its first attempt failed.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
}
