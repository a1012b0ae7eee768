package dto

type RegisterRequestDTO struct {
	Username      string `json:"username" validate:"required,max=150,username" example:"rahim"`
	Email         string `json:"email" validate:"required,email,max=254" example:"rahim@example.com"`
	Password1     string `json:"password1" validate:"required,password,nefield=Username" example:"s3cure-pass"`
	Password2     string `json:"password2" validate:"required,eqfield=Password1" example:"s3cure-pass"`
	FirstName     string `json:"first_name" validate:"required,max=150" example:"Rahim"`
	LastName      string `json:"last_name" validate:"required,max=150" example:"Uddin"`
	BirthDate     string `json:"birth_date" validate:"omitempty,isodate" example:"1990-05-17"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female" example:"Male"`
	AccountType   string `json:"account_type" validate:"required,oneof=Savings Current" example:"Savings"`
	StreetAddress string `json:"street_address" validate:"required,max=100" example:"12 Lake Road"`
	City          string `json:"city" validate:"required,max=50" example:"Dhaka"`
	PostalCode    int    `json:"postal_code" validate:"required,gt=0" example:"1207"`
	Country       string `json:"country" validate:"required,max=50" example:"Bangladesh"`
}

type RegisterResponseDTO struct {
	Message   string `json:"message"`
	AccountNo int    `json:"account_no" example:"100001"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
