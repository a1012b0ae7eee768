package addressrepo

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

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Address, error) {
	query := `
		SELECT id, user_id, street_address, city, post_code, country
		FROM addresses
		WHERE user_id = $1
	`
	var address domain.Address
	err := r.db.QueryRow(ctx, query, userID).Scan(&address.ID, &address.UserID, &address.StreetAddress,
		&address.City, &address.PostCode, &address.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get address", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &address, nil
}

func (r *Repository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `
		INSERT INTO addresses (user_id, street_address, city, post_code, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, address.UserID, address.StreetAddress, address.City,
		address.PostCode, address.Country).Scan(&address.ID)
	if err != nil {
		zap.L().Error("failed to create address", zap.Int("user_id", address.UserID), zap.Error(err))
		return nil, err
	}
	return address, nil
}

func (r *Repository) Update(ctx context.Context, address *domain.Address) error {
	query := `
		UPDATE addresses
		SET street_address = $1, city = $2, post_code = $3, country = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, address.StreetAddress, address.City, address.PostCode, address.Country, address.ID)
	if err != nil {
		zap.L().Error("failed to update address", zap.Int("address_id", address.ID), zap.Error(err))
		return err
	}
	return nil
}
