package cache

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=cache

import (
	"context"
	"time"
)

// Cache stores JSON encoded values under string keys.
// Get reports false without error when the key is absent or expired.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
