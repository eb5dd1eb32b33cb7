package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityUser is the login identity owned by the identity provider.
// UserName and Email hold the generated organization address.
type IdentityUser struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserName           string    `gorm:"type:varchar(255);not null" json:"user_name"`
	NormalizedUserName string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email              string    `gorm:"type:varchar(255);not null" json:"email"`
	NormalizedEmail    string    `gorm:"type:varchar(255);index;not null" json:"-"`
	PasswordHash       string    `gorm:"type:text;not null" json:"-"`
	SecurityStamp      string    `gorm:"type:varchar(64);not null" json:"-"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IdentityUser) TableName() string {
	return "identity_users"
}

// IdentityUserRole assigns a role to an identity user.
type IdentityUserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID int       `gorm:"primaryKey" json:"role_id"`
}

func (IdentityUserRole) TableName() string {
	return "identity_user_roles"
}
