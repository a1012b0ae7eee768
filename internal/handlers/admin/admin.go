package admin

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/dto"
	"github.com/GlebRadaev/gobank/internal/service/settingsservice"
	"github.com/GlebRadaev/gobank/internal/service/transactionservice"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/utils"
	"github.com/GlebRadaev/gobank/pkg/validate"
)

type LoanService interface {
	PendingLoans(ctx context.Context) ([]domain.Transaction, error)
	ApproveLoan(ctx context.Context, loanID int) (*domain.Transaction, error)
}

type SettingsService interface {
	Current(ctx context.Context) (*domain.BankSettings, error)
	Update(ctx context.Context, isBankrupt bool, version int) (*domain.BankSettings, error)
}

type UserLookup interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
}

type AdminHandler struct {
	loanService     LoanService
	settingsService SettingsService
}

func New(loanService LoanService, settingsService SettingsService) *AdminHandler {
	return &AdminHandler{
		loanService:     loanService,
		settingsService: settingsService,
	}
}

// RequireAdmin re-reads the caller on every request, so revoking is_admin takes effect at once.
func RequireAdmin(users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := auth.UserIDFromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			user, err := users.GetUser(r.Context(), userID)
			if err != nil || !user.IsAdmin {
				if err != nil {
					zap.L().Error("can't load user for admin check", zap.Int("user_id", userID), zap.Error(err))
				}
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPendingLoans godoc
//
//	@Summary		Pending loans
//	@Description	Loan requests waiting for approval, oldest first
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PendingLoanDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans [get]
func (h *AdminHandler) GetPendingLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.PendingLoans(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PendingLoanDTO, len(loans))
	for i := range loans {
		response[i] = dto.PendingLoanDTO{
			TransactionResponseDTO: dto.FromTransaction(&loans[i]),
			AccountID:              loans[i].AccountID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveLoan godoc
//
//	@Summary		Approve a loan
//	@Description	Credit the loan amount to the borrower's account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Loan id"
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid loan id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Failure		409	{object}	utils.Response	"Loan already approved"
//	@Failure		422	{object}	utils.Response	"Balance would exceed account capacity"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans/{id}/approve [post]
func (h *AdminHandler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || loanID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid loan id")
		return
	}

	loan, err := h.loanService.ApproveLoan(r.Context(), loanID)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrLoanNotFound), errors.Is(err, transactionservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Loan not found")
		case errors.Is(err, transactionservice.ErrLoanAlreadyApproved):
			utils.RespondWithError(w, http.StatusConflict, "Loan is already approved")
		case errors.Is(err, transactionservice.ErrBalanceLimit):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OperationResponseDTO{
		Message:     "Loan approved",
		Transaction: dto.FromTransaction(loan),
	})
}

// GetSettings godoc
//
//	@Summary		Bank settings
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Current(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// UpdateSettings godoc
//
//	@Summary		Update bank settings
//	@Description	Set the bankrupt flag. version must equal the current version.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettingsRequestDTO	true	"Flag and expected version"
//	@Success		200		{object}	dto.SettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		409		{object}	utils.Response	"Version conflict"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	settings, err := h.settingsService.Update(r.Context(), *req.IsBankrupt, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVersionConflict):
			utils.RespondWithError(w, http.StatusConflict, "Settings were changed by someone else, reload and retry")
		case errors.Is(err, settingsservice.ErrSettingsNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Settings not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

func toSettingsDTO(settings *domain.BankSettings) dto.SettingsResponseDTO {
	return dto.SettingsResponseDTO{
		IsBankrupt: settings.IsBankrupt,
		Version:    settings.Version,
		UpdatedAt:  settings.UpdatedAt,
	}
}
