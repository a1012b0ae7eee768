package settingsservice

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/pkg/cache"
)

const cacheKey = "bank_settings"

var ErrSettingsNotFound = errors.New("bank settings are not initialised")

type Repo interface {
	Get(ctx context.Context) (*domain.BankSettings, error)
	Update(ctx context.Context, settings *domain.BankSettings) (*domain.BankSettings, error)
}

type Service struct {
	repo  Repo
	cache cache.Cache
	ttl   time.Duration
}

func New(repo Repo, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

// Current returns the bank-wide settings. A missing row reads as a solvent bank.
// Cache errors only cost a database round trip.
func (s *Service) Current(ctx context.Context) (*domain.BankSettings, error) {
	var cached domain.BankSettings
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		zap.L().Error("can't read cached bank settings", zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &domain.BankSettings{}, nil
	}
	if err := s.cache.Set(ctx, cacheKey, settings, s.ttl); err != nil {
		zap.L().Error("can't cache bank settings", zap.Error(err))
	}
	return settings, nil
}

// Update flips the bankrupt flag when version matches the stored one.
func (s *Service) Update(ctx context.Context, isBankrupt bool, version int) (*domain.BankSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrSettingsNotFound
	}

	updated, err := s.repo.Update(ctx, &domain.BankSettings{
		ID:         current.ID,
		IsBankrupt: isBankrupt,
		Version:    version,
	})
	if err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		zap.L().Error("can't invalidate cached bank settings", zap.Error(err))
	}

	zap.L().Info("bank settings updated", zap.Bool("is_bankrupt", updated.IsBankrupt), zap.Int("version", updated.Version))
	return updated, nil
}
