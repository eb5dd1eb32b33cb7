package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserResponse describes the authenticated caller. ID is the admin, doctor
// or patient id.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	IdentityUserID uuid.UUID `json:"identity_user_id"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
}
