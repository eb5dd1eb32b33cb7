package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is a clinical visit of a patient to a doctor.
type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DateTime  time.Time `gorm:"not null;index" json:"date_time"`
	Diagnosis string    `gorm:"type:text;not null" json:"diagnosis"`
	Remarks   string    `gorm:"type:text;not null" json:"remarks"`
	Therapy   string    `gorm:"type:text;not null" json:"therapy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
