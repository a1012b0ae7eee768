package repo

import (
	"github.com/GlebRadaev/gobank/internal/pg"
	accountrepo "github.com/GlebRadaev/gobank/internal/repo/account-repo"
	addressrepo "github.com/GlebRadaev/gobank/internal/repo/address-repo"
	settingsrepo "github.com/GlebRadaev/gobank/internal/repo/settings-repo"
	transactionrepo "github.com/GlebRadaev/gobank/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/gobank/internal/repo/user-repo"
	"github.com/GlebRadaev/gobank/internal/service/settingsservice"
	"github.com/GlebRadaev/gobank/internal/service/transactionservice"
	"github.com/GlebRadaev/gobank/internal/service/userservice"
)

// AccountRepo serves both the profile and the money movement workflows.
type AccountRepo interface {
	userservice.AccountRepo
	transactionservice.AccountRepo
}

type Repositories struct {
	UserRepo        userservice.UserRepo
	AccountRepo     AccountRepo
	AddressRepo     userservice.AddressRepo
	TransactionRepo transactionservice.TransactionRepo
	SettingsRepo    settingsservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		AddressRepo:     addressrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
	}
}
