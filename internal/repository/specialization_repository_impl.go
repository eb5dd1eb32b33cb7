package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) Create(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error {
	return db.WithContext(ctx).Create(specialization).Error
}

func (r *specializationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.WithContext(ctx).Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	if len(ids) == 0 {
		return specializations, nil
	}
	err := db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.WithContext(ctx).Order("name ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) ExistsByName(ctx context.Context, db *gorm.DB, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&entity.Specialization{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *specializationRepository) Update(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error {
	return db.WithContext(ctx).Save(specialization).Error
}

func (r *specializationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Specialization{})
	return result.RowsAffected, result.Error
}
