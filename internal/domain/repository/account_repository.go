package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *entity.Account) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Account, error)
	FindByIdentityUserID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (*entity.Account, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
