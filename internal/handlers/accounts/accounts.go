package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/accountservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
	"github.com/GlebRadaev/clippa/pkg/validate"
)

//go:generate mockgen -source=accounts.go -destination=mock_service.go -package=accounts
type Service interface {
	GetConnectedAccounts(ctx context.Context, userID int) ([]domain.ConnectedAccount, error)
	ConnectAccount(ctx context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error)
	DisconnectAccount(ctx context.Context, accountID, userID int) error
	GetAvailablePlatforms(ctx context.Context, userID int) (*domain.PlatformAvailability, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetConnectedAccounts godoc
//
//	@Summary		Connected accounts
//	@Description	Active platform connections of the user. Tokens are never returned.
//	@Tags			Connected accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		int	true	"User ID"
//	@Success		200		{array}		dto.ConnectedAccountResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the account owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/connected-accounts/user/{userId} [get]
func (h *AccountHandler) GetConnectedAccounts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	accounts, err := h.accountService.GetConnectedAccounts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewConnectedAccountsResponse(accounts))
}

// GetAvailablePlatforms godoc
//
//	@Summary		Platforms left to connect
//	@Tags			Connected accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		int	true	"User ID"
//	@Success		200		{object}	dto.PlatformAvailabilityResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the account owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/connected-accounts/user/{userId}/available [get]
func (h *AccountHandler) GetAvailablePlatforms(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	availability, err := h.accountService.GetAvailablePlatforms(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlatformAvailabilityResponse(availability))
}

// ConnectAccount godoc
//
//	@Summary		Connect platform account
//	@Description	Links a platform account. A previous link for the same platform is updated and reactivated.
//	@Tags			Connected accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConnectAccountRequestDTO	true	"Platform account"
//	@Success		200		{object}	dto.ConnectAccountResponseDTO	"Existing link updated"
//	@Success		201		{object}	dto.ConnectAccountResponseDTO	"New link created"
//	@Failure		400		{object}	utils.Response					"Invalid platform"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/connected-accounts [post]
func (h *AccountHandler) ConnectAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConnectAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, created, err := h.accountService.ConnectAccount(r.Context(), &domain.ConnectedAccount{
		UserID:       userID,
		Platform:     domain.Platform(req.Platform),
		Username:     req.Username,
		AccountID:    req.AccountID,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		if errors.Is(err, accountservice.ErrInvalidPlatform) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	code, message := http.StatusOK, "Account updated successfully"
	if created {
		code, message = http.StatusCreated, "Account connected successfully"
	}
	utils.RespondWithJSON(w, code, dto.ConnectAccountResponseDTO{
		Message: message,
		Account: dto.NewConnectedAccountResponse(account),
	})
}

// DisconnectAccount godoc
//
//	@Summary		Disconnect platform account
//	@Tags			Connected accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountId	path		int	true	"Connected account ID"
//	@Success		200			{object}	utils.MessageResponse
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Connected account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/connected-accounts/{accountId} [delete]
func (h *AccountHandler) DisconnectAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	accountID, err := strconv.Atoi(chi.URLParam(r, "accountId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := h.accountService.DisconnectAccount(r.Context(), accountID, userID); err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Account disconnected successfully")
}
