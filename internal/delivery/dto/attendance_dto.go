package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AttendanceRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	DateTime  time.Time `json:"date_time" validate:"required"`
	Diagnosis string    `json:"diagnosis" validate:"required,notblank"`
	Remarks   string    `json:"remarks" validate:"required,notblank"`
	Therapy   string    `json:"therapy" validate:"required,notblank"`
}

// Response DTOs

type AttendanceResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	DateTime    time.Time `json:"date_time"`
	Diagnosis   string    `json:"diagnosis"`
	Remarks     string    `json:"remarks"`
	Therapy     string    `json:"therapy"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AttendanceSummary struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	DateTime  time.Time `json:"date_time"`
	Diagnosis string    `json:"diagnosis"`
}

type AttendanceListResponse struct {
	Attendances []AttendanceSummary `json:"attendances"`
	Total       int                 `json:"total"`
}
