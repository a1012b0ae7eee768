package transactionservice

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/notify"
	"github.com/GlebRadaev/gobank/internal/pg"
	"github.com/GlebRadaev/gobank/pkg/metrics"
)

const maxActiveLoans = 3

var (
	ErrInvalidAmount       = errors.New("amount must be positive with at most two decimal places")
	ErrBelowMinimum        = errors.New("amount is below the minimum")
	ErrAboveMaximum        = errors.New("amount is above the maximum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceLimit        = errors.New("balance would exceed account capacity")
	ErrBankrupt            = errors.New("the bank is currently bankrupt, operation disallowed")
	ErrLoanLimit           = errors.New("you have already 3 active loans, first return them to get another loan")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountNo    = errors.New("invalid account number")
	ErrSelfTransfer        = errors.New("you can't transfer money to your own account")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanAlreadyApproved = errors.New("loan is already approved")
	ErrLoanNotApproved     = errors.New("loan is not approved yet")
	ErrLoanAlreadyPaid     = errors.New("loan is already paid")
)

var rejections = []error{
	ErrInvalidAmount, ErrBelowMinimum, ErrAboveMaximum, ErrInsufficientBalance, ErrBalanceLimit, ErrBankrupt, ErrLoanLimit,
	ErrAccountNotFound, ErrInvalidAccountNo, ErrSelfTransfer, ErrLoanNotFound, ErrLoanAlreadyApproved,
	ErrLoanNotApproved, ErrLoanAlreadyPaid,
}

type AccountRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Account, error)
	FindByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error)
	FindByAccountNo(ctx context.Context, accountNo int) (*domain.Account, error)
	LockByID(ctx context.Context, id int) (*domain.Account, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int, period *domain.Period) ([]domain.Transaction, error)
	ListLoans(ctx context.Context, accountID int) ([]domain.Transaction, error)
	ListPendingLoans(ctx context.Context) ([]domain.Transaction, error)
	CountApprovedLoans(ctx context.Context, accountID int) (int, error)
	Update(ctx context.Context, tx *domain.Transaction) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type SettingsProvider interface {
	Current(ctx context.Context) (*domain.BankSettings, error)
}

type Notifier interface {
	Send(ctx context.Context, notifications ...notify.Notification)
}

type Service struct {
	accounts     AccountRepo
	transactions TransactionRepo
	users        UserRepo
	settings     SettingsProvider
	txManager    pg.TXManager
	notifier     Notifier
	metrics      *metrics.Collector
}

func New(
	accounts AccountRepo,
	transactions TransactionRepo,
	users UserRepo,
	settings SettingsProvider,
	txManager pg.TXManager,
	notifier Notifier,
	collector *metrics.Collector,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		users:        users,
		settings:     settings,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      collector,
	}
}

func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.apply(ctx, userID, domain.Deposit, amount, notify.EventDeposit)
}

func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.apply(ctx, userID, domain.Withdrawal, amount, notify.EventWithdrawal)
}

// RequestLoan records a pending loan; the balance changes only on approval.
func (s *Service) RequestLoan(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.apply(ctx, userID, domain.Loan, amount, notify.EventLoanRequest)
}

// apply runs a single-account workflow: gate, lock, check, move money, append the ledger entry.
func (s *Service) apply(ctx context.Context, userID int, txType domain.TransactionType, amount decimal.Decimal, event notify.Event) (*domain.Transaction, error) {
	r := rules[txType]
	if err := s.precheck(ctx, r, amount); err != nil {
		s.record(txType, amount, err)
		return nil, err
	}

	var entry *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if err := r.check(amount, account.Balance); err != nil {
			return err
		}

		if txType == domain.Loan {
			count, err := s.transactions.CountApprovedLoans(ctx, account.ID)
			if err != nil {
				return err
			}
			if count >= maxActiveLoans {
				return ErrLoanLimit
			}
		}

		balance := r.apply(amount, account.Balance)
		if !balance.Equal(account.Balance) {
			if err := s.accounts.UpdateBalance(ctx, account.ID, balance); err != nil {
				return err
			}
		}

		entry, err = s.transactions.Create(ctx, &domain.Transaction{
			AccountID:               account.ID,
			Amount:                  amount,
			BalanceAfterTransaction: balance,
			TransactionType:         txType,
		})
		return err
	})
	s.record(txType, amount, err)
	if err != nil {
		s.logFailure(txType, userID, err)
		return nil, err
	}

	zap.L().Info("transaction completed",
		zap.Stringer("type", txType), zap.Int("user_id", userID), zap.String("amount", amount.StringFixed(2)))
	s.notifyUser(ctx, userID, event, amount)
	return entry, nil
}

func (s *Service) precheck(ctx context.Context, r rule, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if !r.gated {
		return nil
	}
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return err
	}
	if settings.IsBankrupt {
		return ErrBankrupt
	}
	return nil
}

func (s *Service) Loans(ctx context.Context, userID int) ([]domain.Transaction, error) {
	account, err := s.account(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.transactions.ListLoans(ctx, account.ID)
}

func (s *Service) PendingLoans(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactions.ListPendingLoans(ctx)
}

// ApproveLoan credits a pending loan. The account row is locked before the loan row,
// matching PayLoan, so the two never deadlock.
func (s *Service) ApproveLoan(ctx context.Context, loanID int) (*domain.Transaction, error) {
	var (
		loan    *domain.Transaction
		account *domain.Account
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		found, err := s.transactions.FindByID(ctx, loanID)
		if err != nil {
			return err
		}
		if found == nil || found.TransactionType != domain.Loan {
			return ErrLoanNotFound
		}

		account, err = s.accounts.LockByID(ctx, found.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		loan, err = s.transactions.FindByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan == nil || loan.TransactionType != domain.Loan {
			return ErrLoanNotFound
		}
		if loan.LoanApprove {
			return ErrLoanAlreadyApproved
		}

		balance := account.Balance.Add(loan.Amount)
		if err := checkCapacity(balance); err != nil {
			return err
		}
		if err := s.accounts.UpdateBalance(ctx, account.ID, balance); err != nil {
			return err
		}
		loan.LoanApprove = true
		loan.BalanceAfterTransaction = balance
		return s.transactions.Update(ctx, loan)
	})
	if err != nil {
		s.logFailure(domain.Loan, 0, err)
		return nil, err
	}

	zap.L().Info("loan approved", zap.Int("loan_id", loanID), zap.Int("account_id", account.ID))
	s.notifyUser(ctx, account.UserID, notify.EventLoanApproval, loan.Amount)
	return loan, nil
}

func (s *Service) PayLoan(ctx context.Context, userID, loanID int) (*domain.Transaction, error) {
	r := rules[domain.LoanPaid]
	var loan *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		loan, err = s.transactions.FindByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan == nil || loan.AccountID != account.ID {
			return ErrLoanNotFound
		}
		switch {
		case loan.TransactionType == domain.LoanPaid:
			return ErrLoanAlreadyPaid
		case loan.TransactionType != domain.Loan:
			return ErrLoanNotFound
		case !loan.LoanApprove:
			return ErrLoanNotApproved
		}
		if err := r.check(loan.Amount, account.Balance); err != nil {
			return err
		}

		balance := r.apply(loan.Amount, account.Balance)
		if err := s.accounts.UpdateBalance(ctx, account.ID, balance); err != nil {
			return err
		}
		loan.TransactionType = domain.LoanPaid
		loan.BalanceAfterTransaction = balance
		return s.transactions.Update(ctx, loan)
	})
	amount := decimal.Zero
	if loan != nil {
		amount = loan.Amount
	}
	s.record(domain.LoanPaid, amount, err)
	if err != nil {
		s.logFailure(domain.LoanPaid, userID, err)
		return nil, err
	}

	zap.L().Info("loan repaid", zap.Int("loan_id", loanID), zap.Int("user_id", userID))
	s.notifyUser(ctx, userID, notify.EventLoanRepayment, loan.Amount)
	return loan, nil
}

// Transfer moves money between two accounts and writes opposite-signed entries for both.
// Rows are locked in ascending id order.
func (s *Service) Transfer(ctx context.Context, userID, toAccountNo int, amount decimal.Decimal) (*domain.Transaction, error) {
	r := rules[domain.TransferOut]
	if err := s.precheck(ctx, r, amount); err != nil {
		s.record(domain.TransferOut, amount, err)
		return nil, err
	}

	var (
		outgoing   *domain.Transaction
		receiverID int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		sender, err := s.accounts.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if sender == nil {
			return ErrAccountNotFound
		}
		receiver, err := s.accounts.FindByAccountNo(ctx, toAccountNo)
		if err != nil {
			return err
		}
		if receiver == nil {
			return ErrInvalidAccountNo
		}
		if receiver.ID == sender.ID {
			return ErrSelfTransfer
		}

		sender, receiver, err = s.lockPair(ctx, sender.ID, receiver.ID)
		if err != nil {
			return err
		}
		if err := r.check(amount, sender.Balance); err != nil {
			return err
		}

		senderBalance := sender.Balance.Sub(amount)
		receiverBalance := receiver.Balance.Add(amount)
		if err := checkCapacity(receiverBalance); err != nil {
			return err
		}
		if err := s.accounts.UpdateBalance(ctx, sender.ID, senderBalance); err != nil {
			return err
		}
		if err := s.accounts.UpdateBalance(ctx, receiver.ID, receiverBalance); err != nil {
			return err
		}

		outgoing, err = s.transactions.Create(ctx, &domain.Transaction{
			AccountID:               sender.ID,
			Amount:                  amount.Neg(),
			BalanceAfterTransaction: senderBalance,
			TransactionType:         domain.TransferOut,
		})
		if err != nil {
			return err
		}
		_, err = s.transactions.Create(ctx, &domain.Transaction{
			AccountID:               receiver.ID,
			Amount:                  amount,
			BalanceAfterTransaction: receiverBalance,
			TransactionType:         domain.TransferIn,
		})
		receiverID = receiver.UserID
		return err
	})
	s.record(domain.TransferOut, amount, err)
	if err != nil {
		s.logFailure(domain.TransferOut, userID, err)
		return nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("user_id", userID), zap.Int("to_account_no", toAccountNo), zap.String("amount", amount.StringFixed(2)))
	s.notifyUsers(ctx, notify.EventTransfer, amount, userID, receiverID)
	return outgoing, nil
}

// lockPair locks both accounts in ascending id order and returns them as (first, second) arguments.
func (s *Service) lockPair(ctx context.Context, firstID, secondID int) (*domain.Account, *domain.Account, error) {
	lowID, highID := firstID, secondID
	if lowID > highID {
		lowID, highID = highID, lowID
	}
	low, err := s.accounts.LockByID(ctx, lowID)
	if err != nil {
		return nil, nil, err
	}
	high, err := s.accounts.LockByID(ctx, highID)
	if err != nil {
		return nil, nil, err
	}
	if low == nil || high == nil {
		return nil, nil, ErrAccountNotFound
	}
	if low.ID == firstID {
		return low, high, nil
	}
	return high, low, nil
}

// Report lists the ledger. Without a period CurrentBalance is the live balance,
// with one it is the sum of the amounts in range.
func (s *Service) Report(ctx context.Context, userID int, period *domain.Period) (*domain.Report, error) {
	account, err := s.account(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.ListByAccount(ctx, account.ID, period)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Account:        *account,
		Transactions:   transactions,
		CurrentBalance: account.Balance,
	}
	if period != nil {
		sum := decimal.Zero
		for _, tx := range transactions {
			sum = sum.Add(tx.Amount)
		}
		report.CurrentBalance = sum
	}
	return report, nil
}

func (s *Service) account(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) notifyUser(ctx context.Context, userID int, event notify.Event, amount decimal.Decimal) {
	s.notifyUsers(ctx, event, amount, userID)
}

func (s *Service) notifyUsers(ctx context.Context, event notify.Event, amount decimal.Decimal, userIDs ...int) {
	notifications := make([]notify.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		user, err := s.users.FindByID(ctx, id)
		if err != nil || user == nil {
			zap.L().Error("can't load notification recipient", zap.Int("user_id", id), zap.Error(err))
			continue
		}
		notifications = append(notifications, notify.Notification{Event: event, User: *user, Amount: amount})
	}
	if len(notifications) > 0 {
		s.notifier.Send(ctx, notifications...)
	}
}

func (s *Service) record(txType domain.TransactionType, amount decimal.Decimal, err error) {
	status := metrics.StatusOK
	switch {
	case err == nil:
	case IsRejection(err):
		status = metrics.StatusRejected
	default:
		status = metrics.StatusFailed
	}
	s.metrics.RecordTransaction(txType.String(), status, amount)
}

func (s *Service) logFailure(txType domain.TransactionType, userID int, err error) {
	if IsRejection(err) {
		zap.L().Info("transaction rejected", zap.Stringer("type", txType), zap.Int("user_id", userID), zap.Error(err))
		return
	}
	zap.L().Error("transaction failed", zap.Stringer("type", txType), zap.Int("user_id", userID), zap.Error(err))
}
