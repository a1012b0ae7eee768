package transactionservice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gobank/internal/domain"
)

var (
	minAmount = decimal.NewFromInt(500)
	maxAmount = decimal.NewFromInt(500000)

	// maxStorable is the largest NUMERIC(12,2) value.
	maxStorable = decimal.RequireFromString("9999999999.99")
)

// rule bounds one transaction type. A zero min or max means no bound.
type rule struct {
	name      string
	min       decimal.Decimal
	max       decimal.Decimal
	capped    bool
	gated     bool
	direction int
}

var rules = map[domain.TransactionType]rule{
	domain.Deposit:     {name: "deposit", min: minAmount, direction: 1},
	domain.Withdrawal:  {name: "withdraw", min: minAmount, max: maxAmount, capped: true, gated: true, direction: -1},
	domain.Loan:        {name: "loan", gated: true},
	domain.LoanPaid:    {name: "loan repayment", capped: true, direction: -1},
	domain.TransferOut: {name: "transfer", min: minAmount, max: maxAmount, capped: true, gated: true, direction: -1},
}

func checkAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 || !amount.Equal(amount.Round(2)) || amount.GreaterThan(maxStorable) {
		return ErrInvalidAmount
	}
	return nil
}

func checkCapacity(balance decimal.Decimal) error {
	if balance.GreaterThan(maxStorable) {
		return reject(ErrBalanceLimit, "Account balance can't exceed BDT %s", maxStorable.StringFixed(2))
	}
	return nil
}

func (r rule) check(amount, balance decimal.Decimal) error {
	if !r.min.IsZero() && amount.LessThan(r.min) {
		return reject(ErrBelowMinimum, "Minimum %s amount is BDT %s", r.name, r.min)
	}
	if !r.max.IsZero() && amount.GreaterThan(r.max) {
		return reject(ErrAboveMaximum, "Maximum %s amount is BDT %s", r.name, r.max)
	}
	if r.capped && amount.GreaterThan(balance) {
		return reject(ErrInsufficientBalance, "Insufficient balance, you have only BDT %s in your account", balance.StringFixed(2))
	}
	if r.direction > 0 {
		return checkCapacity(balance.Add(amount))
	}
	return nil
}

// Rejection carries the user-facing message of a failed rule.
type Rejection struct {
	Err     error
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func reject(err error, format string, args ...any) error {
	return &Rejection{Err: err, Message: fmt.Sprintf(format, args...)}
}

// apply returns the balance after the movement.
func (r rule) apply(amount, balance decimal.Decimal) decimal.Decimal {
	switch r.direction {
	case 1:
		return balance.Add(amount)
	case -1:
		return balance.Sub(amount)
	}
	return balance
}
