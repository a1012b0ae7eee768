package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/pg"
)

const accountColumns = `id, user_id, account_type, account_no, birth_date, gender, initial_deposit_date, balance`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&account.ID, &account.UserID, &account.AccountType, &account.AccountNo,
		&account.BirthDate, &account.Gender, &account.InitialDepositDate, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE user_id = $1", userID)
}

// FindByUserIDForUpdate must run inside TXManager.Begin; the row stays locked until commit.
func (r *Repository) FindByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE user_id = $1 FOR UPDATE", userID)
}

func (r *Repository) FindByAccountNo(ctx context.Context, accountNo int) (*domain.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE account_no = $1", accountNo)
}

func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, account_type, account_no, birth_date, gender, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, initial_deposit_date
	`
	err := r.db.QueryRow(ctx, query, account.UserID, account.AccountType, account.AccountNo,
		account.BirthDate, account.Gender, account.Balance).Scan(&account.ID, &account.InitialDepositDate)
	if err != nil {
		zap.L().Error("failed to create account", zap.Int("user_id", account.UserID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	_, err := r.db.Exec(ctx, "UPDATE accounts SET balance = $1 WHERE id = $2", balance, id)
	if err != nil {
		zap.L().Error("failed to update account balance", zap.Int("account_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateDetails(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET account_type = $1, gender = $2, birth_date = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, account.AccountType, account.Gender, account.BirthDate, account.ID)
	if err != nil {
		zap.L().Error("failed to update account details", zap.Int("account_id", account.ID), zap.Error(err))
		return err
	}
	return nil
}
