package dto

import (
	"github.com/shopspring/decimal"
)

type ProfileUpdateRequestDTO struct {
	FirstName     string `json:"first_name" validate:"required,max=150"`
	LastName      string `json:"last_name" validate:"required,max=150"`
	Email         string `json:"email" validate:"required,email,max=254"`
	BirthDate     string `json:"birth_date" validate:"omitempty,isodate" example:"1990-05-17"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female"`
	AccountType   string `json:"account_type" validate:"required,oneof=Savings Current"`
	StreetAddress string `json:"street_address" validate:"required,max=100"`
	City          string `json:"city" validate:"required,max=50"`
	PostalCode    int    `json:"postal_code" validate:"required,gt=0"`
	Country       string `json:"country" validate:"required,max=50"`
}

type PasswordChangeRequestDTO struct {
	OldPassword  string `json:"old_password" validate:"required"`
	NewPassword1 string `json:"new_password1" validate:"required,password"`
	NewPassword2 string `json:"new_password2" validate:"required,eqfield=NewPassword1"`
}

type AccountDTO struct {
	AccountNo          int             `json:"account_no" example:"100001"`
	AccountType        string          `json:"account_type" example:"Savings"`
	Gender             string          `json:"gender,omitempty" example:"Male"`
	BirthDate          string          `json:"birth_date,omitempty" example:"1990-05-17"`
	InitialDepositDate string          `json:"initial_deposit_date" example:"2024-03-01"`
	Balance            decimal.Decimal `json:"balance" swaggertype:"string" example:"1400.00"`
}

type AddressDTO struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    int    `json:"postal_code"`
	Country       string `json:"country"`
}

type ProfileResponseDTO struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	IsAdmin   bool        `json:"is_admin"`
	Account   *AccountDTO `json:"account,omitempty"`
	Address   *AddressDTO `json:"address,omitempty"`
}
