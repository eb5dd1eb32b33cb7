package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error)
	// ExistsByEmail compares emails ignoring case. excludeID, when set, is
	// skipped so an entity does not collide with itself on update.
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
