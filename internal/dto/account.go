package dto

import (
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
)

type ConnectAccountRequestDTO struct {
	Platform     string `json:"platform" validate:"required,oneof=youtube instagram tiktok" example:"youtube"`
	Username     string `json:"username" validate:"max=255" example:"janeclips"`
	AccountID    string `json:"accountId,omitempty" example:"UC123"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ConnectedAccountResponseDTO never carries the platform tokens.
type ConnectedAccountResponseDTO struct {
	ID          int       `json:"id" example:"5"`
	UserID      int       `json:"userId" example:"1"`
	Platform    string    `json:"platform" example:"youtube"`
	Username    string    `json:"username" example:"janeclips"`
	AccountID   string    `json:"accountId" example:"UC123"`
	IsActive    bool      `json:"isActive" example:"true"`
	ConnectedAt time.Time `json:"connectedAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-05-01T10:00:00Z"`
}

type ConnectAccountResponseDTO struct {
	Message string                      `json:"message" example:"Account connected successfully"`
	Account ConnectedAccountResponseDTO `json:"account"`
}

type PlatformAvailabilityResponseDTO struct {
	Available []string `json:"available" example:"instagram,tiktok"`
	Connected []string `json:"connected" example:"youtube"`
}

func NewConnectedAccountResponse(a *domain.ConnectedAccount) ConnectedAccountResponseDTO {
	return ConnectedAccountResponseDTO{
		ID:          a.ID,
		UserID:      a.UserID,
		Platform:    string(a.Platform),
		Username:    a.Username,
		AccountID:   a.AccountID,
		IsActive:    a.IsActive,
		ConnectedAt: a.ConnectedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewConnectedAccountsResponse(accounts []domain.ConnectedAccount) []ConnectedAccountResponseDTO {
	out := make([]ConnectedAccountResponseDTO, len(accounts))
	for i := range accounts {
		out[i] = NewConnectedAccountResponse(&accounts[i])
	}
	return out
}

func NewPlatformAvailabilityResponse(p *domain.PlatformAvailability) PlatformAvailabilityResponseDTO {
	return PlatformAvailabilityResponseDTO{
		Available: platformNames(p.Available),
		Connected: platformNames(p.Connected),
	}
}

func platformNames(platforms []domain.Platform) []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}
