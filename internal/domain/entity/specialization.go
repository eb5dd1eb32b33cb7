package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialization is a named medical category. Names are unique ignoring case.
type Specialization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// DoctorSpecialization links a doctor to a specialization.
type DoctorSpecialization struct {
	DoctorID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	SpecializationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"specialization_id"`
}

func (DoctorSpecialization) TableName() string {
	return "doctor_specializations"
}
