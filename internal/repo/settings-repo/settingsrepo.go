package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get returns the single settings row, or nil when it has not been seeded.
func (r *Repository) Get(ctx context.Context) (*domain.BankSettings, error) {
	query := `
		SELECT id, is_bankrupt, version, updated_at
		FROM bank_settings
		ORDER BY id
		LIMIT 1
	`
	var settings domain.BankSettings
	err := r.db.QueryRow(ctx, query).Scan(&settings.ID, &settings.IsBankrupt, &settings.Version, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get bank settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// Update writes IsBankrupt when the stored version still equals settings.Version
// and returns the row with its bumped version.
func (r *Repository) Update(ctx context.Context, settings *domain.BankSettings) (*domain.BankSettings, error) {
	query := `
		UPDATE bank_settings
		SET is_bankrupt = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
		RETURNING id, is_bankrupt, version, updated_at
	`
	var updated domain.BankSettings
	err := r.db.QueryRow(ctx, query, settings.IsBankrupt, settings.ID, settings.Version).
		Scan(&updated.ID, &updated.IsBankrupt, &updated.Version, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionConflict
		}
		zap.L().Error("failed to update bank settings", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
