package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdentityUserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.IdentityUser) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.IdentityUser, error)
	FindByNormalizedUserName(ctx context.Context, db *gorm.DB, normalizedUserName string) (*entity.IdentityUser, error)
	ExistsByNormalizedEmail(ctx context.Context, db *gorm.DB, normalizedEmail string) (bool, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)

	AddRole(ctx context.Context, db *gorm.DB, userRole *entity.IdentityUserRole) error
	FindRoleNames(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error)
	DeleteRoles(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}
