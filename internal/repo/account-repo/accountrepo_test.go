package accountrepo

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

	"github.com/GlebRadaev/gobank/internal/domain"
)

var columns = []string{"id", "user_id", "account_type", "account_no", "birth_date", "gender", "initial_deposit_date", "balance"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	opened := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	expected := &domain.Account{
		ID:                 3,
		UserID:             1,
		AccountType:        domain.AccountTypeSavings,
		AccountNo:          100001,
		BirthDate:          &birth,
		Gender:             domain.GenderMale,
		InitialDepositDate: opened,
		Balance:            decimal.RequireFromString("2000.00"),
	}
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(columns).
			AddRow(3, 1, domain.AccountTypeSavings, 100001, &birth, domain.GenderMale, opened, decimal.RequireFromString("2000.00"))
	}

	tests := []struct {
		name      string
		query     string
		arg       int
		call      func(ctx context.Context, arg int) (*domain.Account, error)
		mockSetup func(query string, arg int)
		expectErr bool
		result    *domain.Account
	}{
		{
			name:  "By user id",
			query: "SELECT " + accountColumns + " FROM accounts WHERE user_id = $1",
			arg:   1,
			call:  repo.FindByUserID,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnRows(row())
			},
			result: expected,
		},
		{
			name:  "By user id for update",
			query: "SELECT " + accountColumns + " FROM accounts WHERE user_id = $1 FOR UPDATE",
			arg:   1,
			call:  repo.FindByUserIDForUpdate,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnRows(row())
			},
			result: expected,
		},
		{
			name:  "By account number",
			query: "SELECT " + accountColumns + " FROM accounts WHERE account_no = $1",
			arg:   100001,
			call:  repo.FindByAccountNo,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnRows(row())
			},
			result: expected,
		},
		{
			name:  "Lock by id",
			query: "SELECT " + accountColumns + " FROM accounts WHERE id = $1 FOR UPDATE",
			arg:   3,
			call:  repo.LockByID,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnRows(row())
			},
			result: expected,
		},
		{
			name:  "Unknown account number",
			query: "SELECT " + accountColumns + " FROM accounts WHERE account_no = $1",
			arg:   999999,
			call:  repo.FindByAccountNo,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			query: "SELECT " + accountColumns + " FROM accounts WHERE user_id = $1",
			arg:   1,
			call:  repo.FindByUserID,
			mockSetup: func(query string, arg int) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(arg).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.query, tt.arg)
			result, err := tt.call(context.Background(), tt.arg)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := `INSERT INTO accounts (user_id, account_type, account_no, birth_date, gender, balance) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, initial_deposit_date`
	opened := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	account := &domain.Account{
		UserID:      1,
		AccountType: domain.AccountTypeCurrent,
		AccountNo:   100001,
		Gender:      domain.GenderFemale,
		Balance:     decimal.Zero,
	}

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1, domain.AccountTypeCurrent, 100001, account.BirthDate, domain.GenderFemale, decimal.Zero).
		WillReturnRows(pgxmock.NewRows([]string{"id", "initial_deposit_date"}).AddRow(5, opened))

	result, err := repo.Create(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.ID)
	assert.Equal(t, opened, result.InitialDepositDate)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(2, domain.AccountTypeCurrent, 100002, account.BirthDate, domain.GenderFemale, decimal.Zero).
		WillReturnError(errors.New("database error"))

	result, err = repo.Create(context.Background(), &domain.Account{
		UserID: 2, AccountType: domain.AccountTypeCurrent, AccountNo: 100002, Gender: domain.GenderFemale, Balance: decimal.Zero,
	})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := "UPDATE accounts SET balance = $1 WHERE id = $2"
	balance := decimal.RequireFromString("1400.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Balance updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(balance, 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(balance, 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalance(context.Background(), 3, balance)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateDetails(t *testing.T) {
	repo, mock := NewMock(t)
	query := `UPDATE accounts SET account_type = $1, gender = $2, birth_date = $3 WHERE id = $4`
	birth := time.Date(1992, 2, 1, 0, 0, 0, 0, time.UTC)
	account := &domain.Account{ID: 3, AccountType: domain.AccountTypeCurrent, Gender: domain.GenderFemale, BirthDate: &birth}

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(domain.AccountTypeCurrent, domain.GenderFemale, &birth, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateDetails(context.Background(), account))
	assert.NoError(t, mock.ExpectationsWereMet())
}
