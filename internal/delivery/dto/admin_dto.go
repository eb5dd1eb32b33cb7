package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AdminRequest struct {
	PersonRequest
}

type CreateAdminRequest struct {
	AdminRequest
	Password string `json:"password"`
}

// Response DTOs

type AdminResponse struct {
	ID uuid.UUID `json:"id"`
	PersonResponse
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminListResponse struct {
	Admins []AdminResponse `json:"admins"`
	Total  int             `json:"total"`
}
