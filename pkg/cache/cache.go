// Package cache stores rendered artifacts keyed by input and options.
//
// Three backends implement [Cache]:
//
//   - [NullCache] stores nothing (caching disabled)
//   - [FileCache] keeps JSON entries with an expiry on local disk
//   - [RedisCache] shares entries between processes through Redis
//
// [New] picks one from a single spec string, which is what the --cache flag
// and the server configuration pass in:
//
//	c, err := cache.New("")                         // NullCache
//	c, err := cache.New("~/.cache/gridgen")         // FileCache
//	c, err := cache.New("redis://localhost:6379/0") // RedisCache
//
// Keys come from a [Keyer]; [DefaultKeyer] hashes every option that
// affects the output, so a changed option never reuses a stale artifact.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Rendering is a
// pure function of the key, so entries only expire to bound disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with expiry. Get reports a miss as (nil, false, nil);
// errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
