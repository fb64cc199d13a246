package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the expired access token plus its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AccountDTO is the wire shape of a staff account.
type AccountDTO struct {
	ID          uuid.UUID         `json:"id"`
	Email       string            `json:"email"`
	FullName    string            `json:"full_name"`
	Role        enums.AccountRole `json:"role"`
	IsActive    bool              `json:"is_active"`
	LastLoginAt *time.Time        `json:"last_login_at,omitempty"`
}

// LoginResponse returns the token pair and the authenticated account.
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	Account      AccountDTO `json:"account"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func toAccountDTO(account *models.Account) AccountDTO {
	return AccountDTO{
		ID:          account.ID,
		Email:       account.Email,
		FullName:    account.FullName,
		Role:        account.Role,
		IsActive:    account.IsActive,
		LastLoginAt: account.LastLoginAt,
	}
}
