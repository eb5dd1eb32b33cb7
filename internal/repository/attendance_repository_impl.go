package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct{}

func NewAttendanceRepository() domainRepo.AttendanceRepository {
	return &attendanceRepository{}
}

func (r *attendanceRepository) Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	return db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := db.WithContext(ctx).Where("id = ?", id).First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_time ASC, id ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date_time ASC, id ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepository) Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	return db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Attendance{})
	return result.RowsAffected, result.Error
}
