package transactions

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/dto"
	"github.com/GlebRadaev/gobank/internal/service/transactionservice"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/utils"
	"github.com/GlebRadaev/gobank/pkg/validate"
)

type Service interface {
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error)
	RequestLoan(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error)
	Loans(ctx context.Context, userID int) ([]domain.Transaction, error)
	PayLoan(ctx context.Context, userID, loanID int) (*domain.Transaction, error)
	Transfer(ctx context.Context, userID, toAccountNo int, amount decimal.Decimal) (*domain.Transaction, error)
	Report(ctx context.Context, userID int, period *domain.Period) (*domain.Report, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit money
//	@Description	Credit the account. The minimum deposit is BDT 500.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.OperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No account"
//	@Failure		422		{object}	utils.Response	"Below the minimum"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/deposit [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.amountOperation(w, r, h.transactionService.Deposit, func(tx *domain.Transaction) string {
		return fmt.Sprintf("BDT %s has been successfully deposited to your account", tx.Amount.StringFixed(2))
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw money
//	@Description	Debit the account. Amount must be between BDT 500 and BDT 500000 and not exceed the balance.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.OperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Bank is bankrupt"
//	@Failure		422		{object}	utils.Response	"Amount out of bounds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.amountOperation(w, r, h.transactionService.Withdraw, func(tx *domain.Transaction) string {
		return fmt.Sprintf("Successfully withdrawn BDT %s from your account", tx.Amount.StringFixed(2))
	})
}

// RequestLoan godoc
//
//	@Summary		Request a loan
//	@Description	Record a pending loan. At most 3 approved loans may be outstanding.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		201		{object}	dto.OperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Bank is bankrupt"
//	@Failure		422		{object}	utils.Response	"Loan limit reached"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/loans [post]
func (h *TransactionHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	h.amountOperation(w, r, h.transactionService.RequestLoan, func(tx *domain.Transaction) string {
		return fmt.Sprintf("BDT %s of loan request has been sent to the bank authority", tx.Amount.StringFixed(2))
	})
}

type amountFn func(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error)

func (h *TransactionHandler) amountOperation(w http.ResponseWriter, r *http.Request, op amountFn, message func(*domain.Transaction) string) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := op(r.Context(), userID, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	code := http.StatusOK
	if tx.TransactionType == domain.Loan {
		code = http.StatusCreated
	}
	utils.RespondWithJSON(w, code, dto.OperationResponseDTO{
		Message:     message(tx),
		Transaction: dto.FromTransaction(tx),
	})
}

// GetLoans godoc
//
//	@Summary		List loans
//	@Description	Pending and approved loans of the account that are not paid yet
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No account"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/loans [get]
func (h *TransactionHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	loans, err := h.transactionService.Loans(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransactions(loans))
}

// PayLoan godoc
//
//	@Summary		Repay a loan
//	@Description	Debit the loan amount and mark the loan as paid
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Loan id"
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid loan id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Failure		409	{object}	utils.Response	"Loan not approved or already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/loans/{id}/pay [post]
func (h *TransactionHandler) PayLoan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	loanID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || loanID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid loan id")
		return
	}

	loan, err := h.transactionService.PayLoan(r.Context(), userID, loanID)
	if err != nil {
		if errors.Is(err, transactionservice.ErrInsufficientBalance) {
			utils.RespondWithError(w, http.StatusPaymentRequired, "You do not have sufficient balance to pay the loan")
			return
		}
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OperationResponseDTO{
		Message:     "Loan has been successfully paid",
		Transaction: dto.FromTransaction(loan),
	})
}

// Transfer godoc
//
//	@Summary		Transfer money
//	@Description	Move money to another account by account number
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Destination and amount"
//	@Success		200		{object}	dto.OperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Bank is bankrupt"
//	@Failure		404		{object}	utils.Response	"Invalid account number"
//	@Failure		422		{object}	utils.Response	"Amount out of bounds or own account"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/transfer [post]
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	tx, err := h.transactionService.Transfer(r.Context(), userID, req.AccountNo, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OperationResponseDTO{
		Message:     "Money has been successfully transferred",
		Transaction: dto.FromTransaction(tx),
	})
}

// Report godoc
//
//	@Summary		Transaction report
//	@Description	Ledger of the account. The range applies only when both dates are given.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start_date	query		string	false	"Inclusive start, YYYY-MM-DD"
//	@Param			end_date	query		string	false	"Inclusive end, YYYY-MM-DD"
//	@Success		200			{object}	dto.ReportResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed date"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"No account"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/report [get]
func (h *TransactionHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	period, fields := parsePeriod(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if len(fields) > 0 {
		utils.RespondWithFieldErrors(w, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	report, err := h.transactionService.Report(r.Context(), userID, period)
	if err != nil {
		respondError(w, err)
		return
	}

	response := dto.ReportResponseDTO{
		Account:        dto.FromAccount(&report.Account),
		CurrentBalance: report.CurrentBalance.Round(2),
		Transactions:   dto.FromTransactions(report.Transactions),
	}
	if period != nil {
		response.StartDate = period.From.Format(validate.DateLayout)
		response.EndDate = period.To.Format(validate.DateLayout)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// parsePeriod returns nil unless both dates are present.
func parsePeriod(start, end string) (*domain.Period, validate.Errors) {
	fields := validate.Errors{}
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = validate.ParseDate(start); err != nil {
			fields["start_date"] = "Enter a valid date in YYYY-MM-DD format."
		}
	}
	if end != "" {
		if to, err = validate.ParseDate(end); err != nil {
			fields["end_date"] = "Enter a valid date in YYYY-MM-DD format."
		}
	}
	if len(fields) > 0 || start == "" || end == "" {
		return nil, fields
	}
	return &domain.Period{From: from, To: to}, nil
}

func respondError(w http.ResponseWriter, err error) {
	message := err.Error()
	var rejection *transactionservice.Rejection
	if errors.As(err, &rejection) {
		message = rejection.Message
	}

	switch {
	case errors.Is(err, transactionservice.ErrInvalidAmount):
		utils.RespondWithFieldErrors(w, http.StatusBadRequest, "Validation failed",
			map[string]string{"amount": "Ensure this value is a positive amount with at most 10 digits before and 2 after the decimal point."})
	case errors.Is(err, transactionservice.ErrBankrupt):
		utils.RespondWithError(w, http.StatusForbidden, "The bank is currently bankrupt, operation disallowed")
	case errors.Is(err, transactionservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, message)
	case errors.Is(err, transactionservice.ErrBelowMinimum),
		errors.Is(err, transactionservice.ErrAboveMaximum),
		errors.Is(err, transactionservice.ErrBalanceLimit):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, message)
	case errors.Is(err, transactionservice.ErrLoanLimit):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "You have already 3 active loans, first return them to get another loan")
	case errors.Is(err, transactionservice.ErrSelfTransfer):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "You can't transfer money to your own account")
	case errors.Is(err, transactionservice.ErrInvalidAccountNo):
		utils.RespondWithError(w, http.StatusNotFound, "Invalid account number")
	case errors.Is(err, transactionservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, transactionservice.ErrLoanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Loan not found")
	case errors.Is(err, transactionservice.ErrLoanAlreadyPaid):
		utils.RespondWithError(w, http.StatusConflict, "Loan is already paid")
	case errors.Is(err, transactionservice.ErrLoanNotApproved):
		utils.RespondWithError(w, http.StatusConflict, "Loan is not approved yet")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
