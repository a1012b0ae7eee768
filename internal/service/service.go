package service

import (
	"context"
	"time"

	"github.com/GlebRadaev/gobank/internal/handlers/admin"
	"github.com/GlebRadaev/gobank/internal/handlers/auth"
	"github.com/GlebRadaev/gobank/internal/handlers/profile"
	"github.com/GlebRadaev/gobank/internal/handlers/transactions"
	"github.com/GlebRadaev/gobank/internal/pg"
	"github.com/GlebRadaev/gobank/internal/repo"
	"github.com/GlebRadaev/gobank/internal/service/settingsservice"
	"github.com/GlebRadaev/gobank/internal/service/transactionservice"
	"github.com/GlebRadaev/gobank/internal/service/userservice"
	"github.com/GlebRadaev/gobank/pkg/cache"
	"github.com/GlebRadaev/gobank/pkg/metrics"

	pkgauth "github.com/GlebRadaev/gobank/pkg/auth"
)

type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

// Deps are the shared infrastructure the services are built on.
type Deps struct {
	TxManager   pg.TXManager
	Cache       cache.Cache
	Notifier    userservice.Notifier
	Metrics     *metrics.Collector
	JWTSecret   string
	TokenTTL    time.Duration
	SettingsTTL time.Duration
}

type Services struct {
	AuthService        auth.Service
	ProfileService     profile.Service
	UserLookup         admin.UserLookup
	AdminBootstrap     AdminBootstrapper
	TransactionService transactions.Service
	LoanService        admin.LoanService
	SettingsService    admin.SettingsService
	TokenValidator     pkgauth.TokenValidator
	Revocations        pkgauth.RevocationChecker
	Metrics            *metrics.Collector
}

func New(repo *repo.Repositories, deps Deps) *Services {
	jwtService := pkgauth.NewJWTService(deps.JWTSecret)
	revocations := pkgauth.NewRevocations(deps.Cache)

	userService := userservice.New(
		repo.UserRepo, repo.AccountRepo, repo.AddressRepo, deps.TxManager,
		&pkgauth.HashService{}, jwtService, revocations, deps.Notifier, deps.TokenTTL,
	)
	settingsService := settingsservice.New(repo.SettingsRepo, deps.Cache, deps.SettingsTTL)
	transactionService := transactionservice.New(
		repo.AccountRepo, repo.TransactionRepo, repo.UserRepo, settingsService,
		deps.TxManager, deps.Notifier, deps.Metrics,
	)

	return &Services{
		AuthService:        userService,
		ProfileService:     userService,
		UserLookup:         userService,
		AdminBootstrap:     userService,
		TransactionService: transactionService,
		LoanService:        transactionService,
		SettingsService:    settingsService,
		TokenValidator:     jwtService,
		Revocations:        revocations,
		Metrics:            deps.Metrics,
	}
}
