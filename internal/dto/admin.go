package dto

import "time"

type PendingLoanDTO struct {
	TransactionResponseDTO
	AccountID int `json:"account_id" example:"7"`
}

type SettingsRequestDTO struct {
	IsBankrupt *bool `json:"is_bankrupt" validate:"required"`
	Version    int   `json:"version" validate:"required,gt=0" example:"1"`
}

type SettingsResponseDTO struct {
	IsBankrupt bool      `json:"is_bankrupt"`
	Version    int       `json:"version" example:"2"`
	UpdatedAt  time.Time `json:"updated_at"`
}
