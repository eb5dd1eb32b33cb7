package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Account, error) {
	return r.findOne(ctx, db, "user_id = ?", userID)
}

func (r *accountRepository) FindByIdentityUserID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (*entity.Account, error) {
	return r.findOne(ctx, db, "identity_user_id = ?", identityUserID)
}

func (r *accountRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Account{}).Error
}

func (r *accountRepository) findOne(ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where(query, args...).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
