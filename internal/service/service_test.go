package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gobank/internal/pg"
	"github.com/GlebRadaev/gobank/internal/repo"
	"github.com/GlebRadaev/gobank/internal/service/userservice"
	"github.com/GlebRadaev/gobank/pkg/cache"
	"github.com/GlebRadaev/gobank/pkg/metrics"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)

	services := New(repos, Deps{
		TxManager:   pg.NewMockTXManager(ctrl),
		Cache:       cache.NewMemoryCache(),
		Notifier:    userservice.NewMockNotifier(ctrl),
		Metrics:     metrics.New(),
		JWTSecret:   "secret",
		TokenTTL:    time.Hour,
		SettingsTTL: time.Minute,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.UserLookup)
	assert.NotNil(t, services.AdminBootstrap)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.LoanService)
	assert.NotNil(t, services.SettingsService)
	assert.NotNil(t, services.TokenValidator)
	assert.NotNil(t, services.Revocations)
	assert.Same(t, services.AuthService, services.ProfileService)
}
