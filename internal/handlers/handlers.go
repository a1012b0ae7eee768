package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gobank/docs"
	adminhandlers "github.com/GlebRadaev/gobank/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/gobank/internal/handlers/auth"
	profilehandlers "github.com/GlebRadaev/gobank/internal/handlers/profile"
	transactionhandlers "github.com/GlebRadaev/gobank/internal/handlers/transactions"
	"github.com/GlebRadaev/gobank/internal/service"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/metrics"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	RequestLoan(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	PayLoan(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetPendingLoans(w http.ResponseWriter, r *http.Request)
	ApproveLoan(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ProfileHandler     ProfileHandler
	TransactionHandler TransactionHandler
	AdminHandler       AdminHandler

	Authenticate func(http.Handler) http.Handler
	RequireAdmin func(http.Handler) http.Handler
	Metrics      *metrics.Collector
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ProfileHandler:     profilehandlers.New(s.ProfileService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		AdminHandler:       adminhandlers.New(s.LoanService, s.SettingsService),
		Authenticate:       auth.Middleware(s.TokenValidator, s.Revocations),
		RequireAdmin:       adminhandlers.RequireAdmin(s.UserLookup),
		Metrics:            s.Metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
		h.Metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", h.Metrics.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/profile", h.ProfileHandler.GetProfile)
			r.Put("/profile", h.ProfileHandler.UpdateProfile)
			r.Post("/password", h.ProfileHandler.ChangePassword)
		})
	})

	r.Route("/api/transactions", func(r chi.Router) {
		r.Use(h.Authenticate)
		r.Post("/deposit", h.TransactionHandler.Deposit)
		r.Post("/withdraw", h.TransactionHandler.Withdraw)
		r.Route("/loans", func(r chi.Router) {
			r.Post("/", h.TransactionHandler.RequestLoan)
			r.Get("/", h.TransactionHandler.GetLoans)
			r.Post("/{id}/pay", h.TransactionHandler.PayLoan)
		})
		r.Post("/transfer", h.TransactionHandler.Transfer)
		r.Get("/report", h.TransactionHandler.Report)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.Authenticate, h.RequireAdmin)
		r.Get("/loans", h.AdminHandler.GetPendingLoans)
		r.Post("/loans/{id}/approve", h.AdminHandler.ApproveLoan)
		r.Get("/settings", h.AdminHandler.GetSettings)
		r.Put("/settings", h.AdminHandler.UpdateSettings)
	})

	return r
}
