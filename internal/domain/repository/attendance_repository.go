package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Attendance, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Attendance, error)
	Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
