package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gobank/internal/domain"
)

var columns = []string{"id", "account_id", "amount", "balance_after_transaction", "transaction_type", "timestamp", "loan_approve"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := `INSERT INTO transactions (account_id, amount, balance_after_transaction, transaction_type, loan_approve) VALUES ($1, $2, $3, $4, $5) RETURNING id, timestamp`
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func(tx *domain.Transaction)
		expectErr bool
	}{
		{
			name: "Deposit entry saved",
			tx:   &domain.Transaction{AccountID: 3, Amount: dec("1000"), BalanceAfterTransaction: dec("1000"), TransactionType: domain.Deposit},
			mockSetup: func(tx *domain.Transaction) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(3, tx.Amount, tx.BalanceAfterTransaction, domain.Deposit, false).
					WillReturnRows(pgxmock.NewRows([]string{"id", "timestamp"}).AddRow(11, ts))
			},
		},
		{
			name: "Database error",
			tx:   &domain.Transaction{AccountID: 3, Amount: dec("5000"), BalanceAfterTransaction: dec("1000"), TransactionType: domain.Loan},
			mockSetup: func(tx *domain.Transaction) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(3, tx.Amount, tx.BalanceAfterTransaction, domain.Loan, false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.tx)
			result, err := repo.Create(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, result.ID)
				assert.Equal(t, ts, result.Timestamp)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(7, 3, dec("5000"), dec("1000"), domain.Loan, ts, true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE id = $1")).
		WithArgs(8).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE id = $1")).
		WithArgs(9).
		WillReturnError(errors.New("database error"))

	tx, err := repo.FindByIDForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.Transaction{
		ID: 7, AccountID: 3, Amount: dec("5000"), BalanceAfterTransaction: dec("1000"),
		TransactionType: domain.Loan, Timestamp: ts, LoanApprove: true,
	}, tx)

	tx, err = repo.FindByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, tx)

	tx, err = repo.FindByID(context.Background(), 9)
	assert.Error(t, err)
	assert.Nil(t, tx)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC)
	period := &domain.Period{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		period    *domain.Period
		mockSetup func()
		expectErr bool
		expected  []domain.Transaction
	}{
		{
			name:   "Whole ledger",
			period: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY timestamp, id")).
					WithArgs(3).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(1, 3, dec("2000"), dec("2000"), domain.Deposit, t1, false).
						AddRow(2, 3, dec("-600"), dec("1400"), domain.TransferOut, t2, false))
			},
			expected: []domain.Transaction{
				{ID: 1, AccountID: 3, Amount: dec("2000"), BalanceAfterTransaction: dec("2000"), TransactionType: domain.Deposit, Timestamp: t1},
				{ID: 2, AccountID: 3, Amount: dec("-600"), BalanceAfterTransaction: dec("1400"), TransactionType: domain.TransferOut, Timestamp: t2},
			},
		},
		{
			name:   "Inclusive range",
			period: period,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 AND timestamp::date BETWEEN $2::date AND $3::date ORDER BY timestamp, id")).
					WithArgs(3, period.From, period.To).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expected: []domain.Transaction{},
		},
		{
			name:   "Database error",
			period: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY timestamp, id")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByAccount(context.Background(), 3, tt.period)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Loans(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 AND transaction_type = $2 ORDER BY timestamp, id")).
		WithArgs(3, domain.Loan).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(5, 3, dec("5000"), dec("0"), domain.Loan, ts, false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+transactionColumns+" FROM transactions WHERE transaction_type = $1 AND loan_approve = FALSE ORDER BY timestamp, id")).
		WithArgs(domain.Loan).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(5, 3, dec("5000"), dec("0"), domain.Loan, ts, false).
			AddRow(6, 4, dec("700"), dec("20"), domain.Loan, ts, false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE account_id = $1 AND transaction_type = $2 AND loan_approve = TRUE")).
		WithArgs(3, domain.Loan).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	loans, err := repo.ListLoans(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, loans, 1)

	pending, err := repo.ListPendingLoans(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, 4, pending[1].AccountID)

	count, err := repo.CountApprovedLoans(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	query := `UPDATE transactions SET transaction_type = $1, balance_after_transaction = $2, loan_approve = $3 WHERE id = $4`
	tx := &domain.Transaction{ID: 5, TransactionType: domain.LoanPaid, BalanceAfterTransaction: dec("1000"), LoanApprove: true}

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(domain.LoanPaid, tx.BalanceAfterTransaction, true, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(domain.LoanPaid, tx.BalanceAfterTransaction, true, 5).
		WillReturnError(errors.New("database error"))

	assert.NoError(t, repo.Update(context.Background(), tx))
	assert.Error(t, repo.Update(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
