package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account binds a domain entity (admin, doctor or patient) to its identity user.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	IdentityUserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"identity_user_id"`
	Role           string    `gorm:"type:varchar(50);not null" json:"role"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
