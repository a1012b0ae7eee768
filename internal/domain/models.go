package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountNoOffset is added to the owner's user id to build the account number.
const AccountNoOffset = 100000

const (
	AccountTypeSavings = "Savings"
	AccountTypeCurrent = "Current"

	GenderMale   = "Male"
	GenderFemale = "Female"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

type Account struct {
	ID                 int             `db:"id"`
	UserID             int             `db:"user_id"`
	AccountType        string          `db:"account_type"`
	AccountNo          int             `db:"account_no"`
	BirthDate          *time.Time      `db:"birth_date"`
	Gender             string          `db:"gender"`
	InitialDepositDate time.Time       `db:"initial_deposit_date"`
	Balance            decimal.Decimal `db:"balance"`
}

func AccountNoFor(userID int) int {
	return AccountNoOffset + userID
}

type Address struct {
	ID            int    `db:"id"`
	UserID        int    `db:"user_id"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	PostCode      int    `db:"post_code"`
	Country       string `db:"country"`
}

// Profile groups the records created together at registration.
type Profile struct {
	User    User
	Account Account
	Address Address
}

type TransactionType int

const (
	Deposit TransactionType = iota + 1
	Withdrawal
	Loan
	LoanPaid
	TransferIn
	TransferOut
)

var transactionTypeNames = map[TransactionType]string{
	Deposit:     "Deposit",
	Withdrawal:  "Withdrawal",
	Loan:        "Loan",
	LoanPaid:    "Loan Paid",
	TransferIn:  "Transfer In",
	TransferOut: "Transfer Out",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

type Transaction struct {
	ID                      int             `db:"id"`
	AccountID               int             `db:"account_id"`
	Amount                  decimal.Decimal `db:"amount"`
	BalanceAfterTransaction decimal.Decimal `db:"balance_after_transaction"`
	TransactionType         TransactionType `db:"transaction_type"`
	Timestamp               time.Time       `db:"timestamp"`
	LoanApprove             bool            `db:"loan_approve"`
}

type BankSettings struct {
	ID         int       `db:"id" json:"id"`
	IsBankrupt bool      `db:"is_bankrupt" json:"is_bankrupt"`
	Version    int       `db:"version" json:"version"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Period is an inclusive range of calendar days.
type Period struct {
	From time.Time
	To   time.Time
}

type Report struct {
	Account        Account
	Transactions   []Transaction
	CurrentBalance decimal.Decimal
}

// Registration is the validated input of the sign-up workflow.
type Registration struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Gender      string
	AccountType string
	Address     Address
}

type ProfileUpdate struct {
	FirstName   string
	LastName    string
	Email       string
	BirthDate   *time.Time
	Gender      string
	AccountType string
	Address     Address
}
