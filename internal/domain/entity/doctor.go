package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a staff member with at least one specialization.
// Specialization links live in doctor_specializations and are maintained by
// the specialization linker, never through GORM association saving.
type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Person
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
