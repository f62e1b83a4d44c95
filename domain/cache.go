package domain

import "context"

// Cache entity types. They form the first half of every cache key.
const (
	CacheUser    = "user"
	CachePost    = "post"
	CacheComment = "comment"
)

// Loader fetches the source-of-truth value for a cache miss.
type Loader func(ctx context.Context) (any, error)

// EntityCache is a read-through cache over slow-changing entities keyed by (entityType, id).
type EntityCache interface {
	// GetOrPopulate decodes the cached value into dst, or calls loader, caches its
	// result and decodes that into dst. Loader errors are returned and nothing is cached.
	GetOrPopulate(ctx context.Context, entityType string, id int64, dst any, loader Loader) error

	// Invalidate drops the cached value. The next GetOrPopulate calls the loader.
	Invalidate(ctx context.Context, entityType string, id int64) error
}

// CacheStore is the key-value backend behind EntityCache.
//
// Every key carries a generation that Invalidate advances. A payload is only
// written back if the generation read before loading is still current, so a
// load racing with an invalidation never repopulates a stale value.
type CacheStore interface {
	// Get returns ErrCacheMiss when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Generation(ctx context.Context, key string) (int64, error)
	SetIfGeneration(ctx context.Context, key string, gen int64, payload []byte) (bool, error)
	Invalidate(ctx context.Context, key string) error
}
