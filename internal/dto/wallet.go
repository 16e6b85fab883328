package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/clippa/internal/domain"
)

type WalletAmountRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"25.50"`
	Description string          `json:"description,omitempty" validate:"max=255" example:"Top up"`
	PayoutCard  string          `json:"payoutCard,omitempty" example:"4561261212345467"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id" example:"10"`
	WalletID    int             `json:"walletId" example:"3"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"25.50"`
	Type        string          `json:"type" example:"credit"`
	Description string          `json:"description" example:"Funds added"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type WalletResponseDTO struct {
	ID           int                      `json:"id" example:"3"`
	UserID       int                      `json:"userId" example:"1"`
	Balance      decimal.Decimal          `json:"balance" swaggertype:"number" example:"120.75"`
	CreatedAt    time.Time                `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt    time.Time                `json:"updatedAt" example:"2024-05-02T10:00:00Z"`
	Transactions []TransactionResponseDTO `json:"transactions"`
}

type WalletOperationResponseDTO struct {
	Message string            `json:"message" example:"Funds added successfully"`
	Wallet  WalletResponseDTO `json:"wallet"`
}

func NewTransactionResponse(t domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, len(txs))
	for i, t := range txs {
		out[i] = NewTransactionResponse(t)
	}
	return out
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	return WalletResponseDTO{
		ID:           w.ID,
		UserID:       w.UserID,
		Balance:      w.Balance,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
		Transactions: NewTransactionsResponse(w.Transactions),
	}
}
