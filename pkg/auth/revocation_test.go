package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gobank/pkg/cache"
)

func TestRevocations(t *testing.T) {
	ctx := context.Background()
	r := NewRevocations(cache.NewMemoryCache())

	require.NoError(t, r.Revoke(ctx, "token-1", time.Now().Add(time.Hour)))
	require.NoError(t, r.Revoke(ctx, "token-2", time.Now().Add(-time.Hour)))

	tests := []struct {
		name    string
		tokenID string
		want    bool
	}{
		{name: "Revoked token", tokenID: "token-1", want: true},
		{name: "Already expired token is not stored", tokenID: "token-2", want: false},
		{name: "Unknown token", tokenID: "token-3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revoked, err := r.IsRevoked(ctx, tt.tokenID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, revoked)
		})
	}
}

func TestRevocations_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cache.NewMockCache(ctrl)
	c.EXPECT().Get(gomock.Any(), "revoked:token-1", gomock.Any()).Return(false, errors.New("redis down"))

	revoked, err := NewRevocations(c).IsRevoked(context.Background(), "token-1")
	assert.Error(t, err)
	assert.False(t, revoked)
}
