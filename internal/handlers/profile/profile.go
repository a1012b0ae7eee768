package profile

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/dto"
	"github.com/GlebRadaev/gobank/internal/service/userservice"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/utils"
	"github.com/GlebRadaev/gobank/pkg/validate"
)

type Service interface {
	Profile(ctx context.Context, userID int) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int, upd *domain.ProfileUpdate) (*domain.Profile, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
}

type ProfileHandler struct {
	userService Service
}

func New(userService Service) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	User details with the bank account and postal address
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Update personal details, account details and address. A missing account or address is created.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfileUpdateRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProfileUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Description	Replace the password after checking the old one. A confirmation e-mail is sent.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PasswordChangeRequestDTO	true	"Old and new passwords"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid fields or wrong old password"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/password [post]
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PasswordChangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithValidationError(w, err)
		return
	}

	err := h.userService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword1)
	if err != nil {
		if errors.Is(err, userservice.ErrWrongPassword) {
			utils.RespondWithFieldErrors(w, http.StatusBadRequest, "Validation failed",
				map[string]string{"old_password": "Your old password was entered incorrectly. Please enter it again."})
			return
		}
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password Updated Successfully"})
}

func respondError(w http.ResponseWriter, err error) {
	var fields validate.Errors
	switch {
	case errors.As(err, &fields):
		utils.RespondWithFieldErrors(w, http.StatusBadRequest, "Validation failed", fields)
	case errors.Is(err, domain.ErrEmailTaken):
		utils.RespondWithFieldErrors(w, http.StatusConflict, "Email already taken",
			map[string]string{"email": "A user with that email already exists."})
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
