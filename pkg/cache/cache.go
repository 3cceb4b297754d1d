// Package cache stores solved ladders keyed by query and dictionary.
//
// Backends implement [Cache]: [FileCache] for the CLI, [RedisCache] and
// [MongoCache] for servers sharing results, and [NullCache] to disable
// caching. Keys come from a [Keyer] so that backends never see query
// structure, only opaque strings.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)
