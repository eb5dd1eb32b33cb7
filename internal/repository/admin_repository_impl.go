package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct{}

func NewAdminRepository() domainRepo.AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error) {
	return existsByEmail(ctx, db, &entity.Admin{}, email, excludeID)
}

func (r *adminRepository) Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	return db.WithContext(ctx).Save(admin).Error
}

func (r *adminRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Admin{})
	return result.RowsAffected, result.Error
}
