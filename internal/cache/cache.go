package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a keyed store for small JSON-encodable values. Implementations
// own eviction and expiry; callers only ever write one entry per operation
// and read it back later.
type Cache interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, dest any) error
}
