package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecializationRepository interface {
	Create(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialization, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialization, error)
	ExistsByName(ctx context.Context, db *gorm.DB, name string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}

type DoctorSpecializationRepository interface {
	FindSpecializationIDs(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
	CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialization) error
	DeleteBatch(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, specializationIDs []uuid.UUID) error
	DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error
	CountBySpecializationID(ctx context.Context, db *gorm.DB, specializationID uuid.UUID) (int64, error)
}
