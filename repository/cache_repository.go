package repository

import (
	"context"
	"time"
)

// CacheRepository caches calculation-service responses keyed by a hash of
// the submitted form.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
