package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
}

type TransferRequestDTO struct {
	AccountNo int             `json:"account_no" validate:"required,gt=0" example:"100002"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"600"`
}

type TransactionResponseDTO struct {
	ID                      int             `json:"id" example:"42"`
	TransactionType         string          `json:"transaction_type" example:"Deposit"`
	Amount                  decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	BalanceAfterTransaction decimal.Decimal `json:"balance_after_transaction" swaggertype:"string" example:"1000.00"`
	Timestamp               time.Time       `json:"timestamp" example:"2024-03-01T10:00:00Z"`
	LoanApprove             bool            `json:"loan_approve"`
}

type OperationResponseDTO struct {
	Message     string                 `json:"message"`
	Transaction TransactionResponseDTO `json:"transaction"`
}

type ReportResponseDTO struct {
	Account        AccountDTO               `json:"account"`
	StartDate      string                   `json:"start_date,omitempty" example:"2024-03-01"`
	EndDate        string                   `json:"end_date,omitempty" example:"2024-03-31"`
	CurrentBalance decimal.Decimal          `json:"current_balance" swaggertype:"string" example:"400.00"`
	Transactions   []TransactionResponseDTO `json:"transactions"`
}
