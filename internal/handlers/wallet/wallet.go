package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/walletservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
	"github.com/GlebRadaev/clippa/pkg/validate"
)

//go:generate mockgen -source=wallet.go -destination=mock_service.go -package=wallet
type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	AddFunds(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.Wallet, error)
	WithdrawFunds(ctx context.Context, userID int, amount decimal.Decimal, description, payoutCard string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet
//	@Description	Balance and the latest 50 transactions. The wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		int	true	"User ID"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the wallet owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userId} [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		int	true	"User ID"
//	@Param			limit	query		int	false	"Page size, 1..100"	default(50)
//	@Param			offset	query		int	false	"Offset"			default(0)
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid paging parameters"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the wallet owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userId}/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, err := queryInt(r, "limit", walletservice.RecentTransactions)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	txs, err := h.walletService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(txs))
}

// AddFunds godoc
//
//	@Summary		Add funds
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int							true	"User ID"
//	@Param			request	body		dto.WalletAmountRequestDTO	true	"Amount to credit"
//	@Success		200		{object}	dto.WalletOperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the wallet owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userId}/add [post]
func (h *WalletHandler) AddFunds(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	req, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	wallet, err := h.walletService.AddFunds(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		Message: "Funds added successfully",
		Wallet:  dto.NewWalletResponse(wallet),
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the wallet. An optional payout card must pass the Luhn check.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int							true	"User ID"
//	@Param			request	body		dto.WalletAmountRequestDTO	true	"Amount to debit"
//	@Success		200		{object}	dto.WalletOperationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, card or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the wallet owner"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userId}/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	req, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	wallet, err := h.walletService.WithdrawFunds(r.Context(), userID, req.Amount, req.Description, req.PayoutCard)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		Message: "Funds withdrawn successfully",
		Wallet:  dto.NewWalletResponse(wallet),
	})
}

func (h *WalletHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidAmount),
		errors.Is(err, walletservice.ErrInsufficientBalance),
		errors.Is(err, walletservice.ErrInvalidCard):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (dto.WalletAmountRequestDTO, bool) {
	var req dto.WalletAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, walletservice.ErrInvalidAmount.Error())
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
