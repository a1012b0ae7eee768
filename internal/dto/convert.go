package dto

import (
	"time"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/pkg/validate"
)

func FromTransaction(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:                      tx.ID,
		TransactionType:         tx.TransactionType.String(),
		Amount:                  tx.Amount.Round(2),
		BalanceAfterTransaction: tx.BalanceAfterTransaction.Round(2),
		Timestamp:               tx.Timestamp,
		LoanApprove:             tx.LoanApprove,
	}
}

func FromTransactions(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, len(txs))
	for i := range txs {
		out[i] = FromTransaction(&txs[i])
	}
	return out
}

func FromAccount(account *domain.Account) AccountDTO {
	out := AccountDTO{
		AccountNo:          account.AccountNo,
		AccountType:        account.AccountType,
		Gender:             account.Gender,
		InitialDepositDate: account.InitialDepositDate.Format(validate.DateLayout),
		Balance:            account.Balance.Round(2),
	}
	if account.BirthDate != nil {
		out.BirthDate = account.BirthDate.Format(validate.DateLayout)
	}
	return out
}

// FromProfile omits the account and address of users that have none.
func FromProfile(profile *domain.Profile) ProfileResponseDTO {
	out := ProfileResponseDTO{
		Username:  profile.User.Username,
		Email:     profile.User.Email,
		FirstName: profile.User.FirstName,
		LastName:  profile.User.LastName,
		IsAdmin:   profile.User.IsAdmin,
	}
	if profile.Account.ID != 0 {
		account := FromAccount(&profile.Account)
		out.Account = &account
	}
	if profile.Address.ID != 0 {
		out.Address = &AddressDTO{
			StreetAddress: profile.Address.StreetAddress,
			City:          profile.Address.City,
			PostalCode:    profile.Address.PostCode,
			Country:       profile.Address.Country,
		}
	}
	return out
}

func (r *RegisterRequestDTO) ToDomain() *domain.Registration {
	return &domain.Registration{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password1,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthDate:   parseOptionalDate(r.BirthDate),
		Gender:      r.Gender,
		AccountType: r.AccountType,
		Address: domain.Address{
			StreetAddress: r.StreetAddress,
			City:          r.City,
			PostCode:      r.PostalCode,
			Country:       r.Country,
		},
	}
}

func (r *ProfileUpdateRequestDTO) ToDomain() *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		BirthDate:   parseOptionalDate(r.BirthDate),
		Gender:      r.Gender,
		AccountType: r.AccountType,
		Address: domain.Address{
			StreetAddress: r.StreetAddress,
			City:          r.City,
			PostCode:      r.PostalCode,
			Country:       r.Country,
		},
	}
}

// parseOptionalDate expects s to have passed the isodate check.
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := validate.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
