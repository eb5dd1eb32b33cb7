package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PatientRequest struct {
	PersonRequest
	BloodType string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

type CreatePatientRequest struct {
	PatientRequest
	Password string `json:"password"`
}

// Response DTOs

type PatientResponse struct {
	ID uuid.UUID `json:"id"`
	PersonResponse
	BloodType string    `json:"blood_type"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
