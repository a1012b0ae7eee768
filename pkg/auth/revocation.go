package auth

import (
	"context"
	"time"

	"github.com/GlebRadaev/gobank/pkg/cache"
)

const revokedPrefix = "revoked:"

// Revocations keeps logged out token ids until the token would expire anyway.
type Revocations struct {
	cache cache.Cache
	now   func() time.Time
}

func NewRevocations(c cache.Cache) *Revocations {
	return &Revocations{
		cache: c,
		now:   time.Now,
	}
}

func (r *Revocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.cache.Set(ctx, revokedPrefix+tokenID, true, ttl)
}

func (r *Revocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	found, err := r.cache.Get(ctx, revokedPrefix+tokenID, &revoked)
	if err != nil {
		return false, err
	}
	return found && revoked, nil
}
