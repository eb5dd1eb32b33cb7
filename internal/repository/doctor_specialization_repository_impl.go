package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorSpecializationRepository struct{}

func NewDoctorSpecializationRepository() domainRepo.DoctorSpecializationRepository {
	return &doctorSpecializationRepository{}
}

func (r *doctorSpecializationRepository) FindSpecializationIDs(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&entity.DoctorSpecialization{}).
		Where("doctor_id = ?", doctorID).
		Order("specialization_id ASC").
		Pluck("specialization_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *doctorSpecializationRepository) CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialization) error {
	if len(links) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&links).Error
}

func (r *doctorSpecializationRepository) DeleteBatch(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, specializationIDs []uuid.UUID) error {
	if len(specializationIDs) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Where("doctor_id = ? AND specialization_id IN ?", doctorID, specializationIDs).
		Delete(&entity.DoctorSpecialization{}).Error
}

func (r *doctorSpecializationRepository) DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error {
	return db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&entity.DoctorSpecialization{}).Error
}

func (r *doctorSpecializationRepository) CountBySpecializationID(ctx context.Context, db *gorm.DB, specializationID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.DoctorSpecialization{}).
		Where("specialization_id = ?", specializationID).
		Count(&count).Error
	return count, err
}
