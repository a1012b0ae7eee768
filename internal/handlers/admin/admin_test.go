package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/dto"
	"github.com/GlebRadaev/gobank/internal/service/settingsservice"
	"github.com/GlebRadaev/gobank/internal/service/transactionservice"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/utils"
)

type mocks struct {
	loans    *MockLoanService
	settings *MockSettingsService
	users    *MockUserLookup
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		loans:    NewMockLoanService(ctrl),
		settings: NewMockSettingsService(ctrl),
		users:    NewMockUserLookup(ctrl),
	}
	return New(m.loans, m.settings), m
}

func TestRequireAdmin(t *testing.T) {
	_, m := NewMock(t)

	tests := []struct {
		name         string
		ctx          context.Context
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Administrator passes",
			ctx:  context.WithValue(context.Background(), auth.UserIDKey, 1),
			prepareMock: func() {
				m.users.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1, IsAdmin: true}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Customer is forbidden",
			ctx:  context.WithValue(context.Background(), auth.UserIDKey, 2),
			prepareMock: func() {
				m.users.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Lookup failure is forbidden",
			ctx:  context.WithValue(context.Background(), auth.UserIDKey, 3),
			prepareMock: func() {
				m.users.EXPECT().GetUser(gomock.Any(), 3).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Anonymous",
			ctx:          context.Background(),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/loans", nil).WithContext(tt.ctx)
			w := httptest.NewRecorder()

			RequireAdmin(m.users)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetPendingLoansHandler(t *testing.T) {
	handler, m := NewMock(t)
	m.loans.EXPECT().PendingLoans(gomock.Any()).Return([]domain.Transaction{
		{ID: 200, AccountID: 10, Amount: decimal.NewFromInt(5000), TransactionType: domain.Loan},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/admin/loans", nil)
	w := httptest.NewRecorder()
	handler.GetPendingLoans(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.PendingLoanDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, 200, body[0].ID)
	assert.Equal(t, 10, body[0].AccountID)
}

func TestApproveLoanHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		loanID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Approved",
			loanID: "200",
			prepareMock: func() {
				m.loans.EXPECT().ApproveLoan(gomock.Any(), 200).
					Return(&domain.Transaction{ID: 200, TransactionType: domain.Loan, LoanApprove: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown loan",
			loanID: "404",
			prepareMock: func() {
				m.loans.EXPECT().ApproveLoan(gomock.Any(), 404).Return(nil, transactionservice.ErrLoanNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Approved twice",
			loanID: "200",
			prepareMock: func() {
				m.loans.EXPECT().ApproveLoan(gomock.Any(), 200).Return(nil, transactionservice.ErrLoanAlreadyApproved)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Approval past the balance capacity",
			loanID: "200",
			prepareMock: func() {
				m.loans.EXPECT().ApproveLoan(gomock.Any(), 200).
					Return(nil, &transactionservice.Rejection{Err: transactionservice.ErrBalanceLimit, Message: "Account balance can't exceed BDT 9999999999.99"})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Bad id",
			loanID:       "-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.loanID)
			r := httptest.NewRequest(http.MethodPost, "/api/admin/loans/"+tt.loanID+"/approve", nil).
				WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ApproveLoan(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSettingsHandlers(t *testing.T) {
	handler, m := NewMock(t)
	updatedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		method          string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedVersion int
	}{
		{
			name:   "Read settings",
			method: http.MethodGet,
			prepareMock: func() {
				m.settings.EXPECT().Current(gomock.Any()).Return(&domain.BankSettings{ID: 1, Version: 3, UpdatedAt: updatedAt}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedVersion: 3,
		},
		{
			name:   "Declare bankruptcy",
			method: http.MethodPut,
			body:   `{"is_bankrupt":true,"version":3}`,
			prepareMock: func() {
				m.settings.EXPECT().Update(gomock.Any(), true, 3).
					Return(&domain.BankSettings{ID: 1, IsBankrupt: true, Version: 4, UpdatedAt: updatedAt}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedVersion: 4,
		},
		{
			name:   "Stale version",
			method: http.MethodPut,
			body:   `{"is_bankrupt":false,"version":2}`,
			prepareMock: func() {
				m.settings.EXPECT().Update(gomock.Any(), false, 2).Return(nil, domain.ErrVersionConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Settings row missing",
			method: http.MethodPut,
			body:   `{"is_bankrupt":false,"version":1}`,
			prepareMock: func() {
				m.settings.EXPECT().Update(gomock.Any(), false, 1).Return(nil, settingsservice.ErrSettingsNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Flag missing",
			method:       http.MethodPut,
			body:         `{"version":1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(tt.method, "/api/admin/settings", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			if tt.method == http.MethodGet {
				handler.GetSettings(w, r)
			} else {
				handler.UpdateSettings(w, r)
			}

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedVersion != 0 {
				var body dto.SettingsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedVersion, body.Version)
			} else {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}
