package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SpecializationRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// Response DTOs

type SpecializationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SpecializationSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SpecializationListResponse struct {
	Specializations []SpecializationResponse `json:"specializations"`
	Total           int                      `json:"total"`
}
