package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/pg"
)

const transactionColumns = `id, account_id, amount, balance_after_transaction, transaction_type, timestamp, loan_approve`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, amount, balance_after_transaction, transaction_type, loan_approve)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp
	`
	err := r.db.QueryRow(ctx, query, tx.AccountID, tx.Amount, tx.BalanceAfterTransaction,
		tx.TransactionType, tx.LoanApprove).Scan(&tx.ID, &tx.Timestamp)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Stringer("type", tx.TransactionType), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.findOne(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)
}

func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.findOne(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.BalanceAfterTransaction,
		&tx.TransactionType, &tx.Timestamp, &tx.LoanApprove)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

// ListByAccount returns the account ledger in timestamp order. A nil period returns everything;
// otherwise both bounds are inclusive calendar days.
func (r *Repository) ListByAccount(ctx context.Context, accountID int, period *domain.Period) ([]domain.Transaction, error) {
	if period == nil {
		return r.list(ctx, `
			SELECT `+transactionColumns+`
			FROM transactions
			WHERE account_id = $1
			ORDER BY timestamp, id
		`, accountID)
	}
	return r.list(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE account_id = $1 AND timestamp::date BETWEEN $2::date AND $3::date
		ORDER BY timestamp, id
	`, accountID, period.From, period.To)
}

func (r *Repository) ListLoans(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	return r.list(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE account_id = $1 AND transaction_type = $2
		ORDER BY timestamp, id
	`, accountID, domain.Loan)
}

func (r *Repository) ListPendingLoans(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transaction_type = $1 AND loan_approve = FALSE
		ORDER BY timestamp, id
	`, domain.Loan)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.BalanceAfterTransaction,
			&tx.TransactionType, &tx.Timestamp, &tx.LoanApprove)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}

func (r *Repository) CountApprovedLoans(ctx context.Context, accountID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE account_id = $1 AND transaction_type = $2 AND loan_approve = TRUE
	`
	var count int
	if err := r.db.QueryRow(ctx, query, accountID, domain.Loan).Scan(&count); err != nil {
		zap.L().Error("failed to count approved loans", zap.Int("account_id", accountID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Update persists the mutable part of a ledger entry: its type, snapshot and approval flag.
func (r *Repository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET transaction_type = $1, balance_after_transaction = $2, loan_approve = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, tx.TransactionType, tx.BalanceAfterTransaction, tx.LoanApprove, tx.ID)
	if err != nil {
		zap.L().Error("failed to update transaction", zap.Int("id", tx.ID), zap.Error(err))
		return err
	}
	return nil
}
