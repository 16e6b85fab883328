package dto

import (
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
	Role     string `json:"role,omitempty" example:"clipper"`

	// CurrentRole is the field name older clients send.
	CurrentRole string `json:"currentRole,omitempty" swaggerignore:"true"`
}

// Normalize fills Role from CurrentRole when only the latter was sent.
func (r *RegisterRequestDTO) Normalize() {
	if r.Role == "" {
		r.Role = r.CurrentRole
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type SwitchRoleRequestDTO struct {
	Role        string `json:"role" validate:"required,oneof=clipper creator" example:"creator"`
	CurrentRole string `json:"currentRole,omitempty" swaggerignore:"true"`
}

func (r *SwitchRoleRequestDTO) Normalize() {
	if r.Role == "" {
		r.Role = r.CurrentRole
	}
}

type UpdateProfileRequestDTO struct {
	Name      string `json:"name" validate:"required" example:"Jane Doe"`
	Username  string `json:"username" validate:"max=50" example:"janeclips"`
	Bio       string `json:"bio" validate:"max=500" example:"Gaming clips every day"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url" example:"https://cdn.example.com/jane.png"`
}

type UserResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	Role      string    `json:"role" example:"clipper"`
	Username  string    `json:"username,omitempty" example:"janeclips"`
	Bio       string    `json:"bio,omitempty" example:"Gaming clips every day"`
	AvatarURL string    `json:"avatarUrl,omitempty" example:"https://cdn.example.com/jane.png"`
	CreatedAt time.Time `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type AuthResponseDTO struct {
	Message string          `json:"message" example:"Login successful"`
	Token   string          `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    UserResponseDTO `json:"user"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
