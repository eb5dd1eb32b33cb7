package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DoctorRequest struct {
	PersonRequest
	SpecializationIDs []uuid.UUID `json:"specialization_ids"`
}

type CreateDoctorRequest struct {
	DoctorRequest
	Password string `json:"password"`
}

// Response DTOs

type DoctorResponse struct {
	ID uuid.UUID `json:"id"`
	PersonResponse
	Specializations []SpecializationSummary `json:"specializations"`
	Username        string                  `json:"username,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
