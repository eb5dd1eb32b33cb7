package usecase

import (
	"context"
	"strings"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/service"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AttendanceUsecase interface {
	Create(ctx context.Context, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AttendanceListResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AttendanceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attendanceUsecase struct {
	uow            database.UnitOfWork
	log            *logrus.Logger
	validator      *validator.CustomValidator
	attendanceRepo repository.AttendanceRepository
	patientRepo    repository.PatientRepository
	doctorRepo     repository.DoctorRepository
	auditService   service.AuditService
	now            func() time.Time
}

func NewAttendanceUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	attendanceRepo repository.AttendanceRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AttendanceUsecase {
	return &attendanceUsecase{
		uow:            uow,
		log:            log,
		validator:      validator,
		attendanceRepo: attendanceRepo,
		patientRepo:    patientRepo,
		doctorRepo:     doctorRepo,
		auditService:   auditService,
		now:            time.Now,
	}
}

// Create records a visit. The visit time must not be earlier than now.
func (u *attendanceUsecase) Create(ctx context.Context, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	if req.DateTime.Before(u.now()) {
		return nil, ErrAttendanceInPast
	}

	patient, doctor, err := u.findParties(ctx, u.uow.DB(ctx), req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	attendance := &entity.Attendance{}
	applyAttendance(attendance, req)

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.attendanceRepo.Create(ctx, tx, attendance); err != nil {
			u.log.Warnf("Failed to create attendance: %+v", err)
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAttendanceCreate, "attendance", attendance.ID, converter.AttendanceToResponse(attendance, nil, nil))
	})
	if err != nil {
		return nil, err
	}

	return converter.AttendanceToResponse(attendance, patient, doctor), nil
}

func (u *attendanceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error) {
	db := u.uow.DB(ctx)
	attendance, err := u.findAttendance(ctx, db, id)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, db, attendance.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	doctor, err := u.doctorRepo.FindByID(ctx, db, attendance.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	return converter.AttendanceToResponse(attendance, patient, doctor), nil
}

// ListByPatient returns the patient's visits ordered by date and time.
func (u *attendanceUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AttendanceListResponse, error) {
	attendances, err := u.attendanceRepo.FindByPatientID(ctx, u.uow.DB(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient attendances: %+v", err)
		return nil, err
	}
	return &dto.AttendanceListResponse{
		Attendances: converter.AttendancesToSummaries(attendances),
		Total:       len(attendances),
	}, nil
}

// ListByDoctor returns the doctor's visits ordered by date and time.
func (u *attendanceUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AttendanceListResponse, error) {
	attendances, err := u.attendanceRepo.FindByDoctorID(ctx, u.uow.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor attendances: %+v", err)
		return nil, err
	}
	return &dto.AttendanceListResponse{
		Attendances: converter.AttendancesToSummaries(attendances),
		Total:       len(attendances),
	}, nil
}

func (u *attendanceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.AttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	attendance, err := u.findAttendance(ctx, db, id)
	if err != nil {
		return nil, err
	}

	patient, doctor, err := u.findParties(ctx, db, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.AttendanceToResponse(attendance, nil, nil)
	applyAttendance(attendance, req)

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.attendanceRepo.Update(ctx, tx, attendance); err != nil {
			u.log.Warnf("Failed to update attendance: %+v", err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAttendanceUpdate, "attendance", id, oldValue, converter.AttendanceToResponse(attendance, nil, nil))
	})
	if err != nil {
		return nil, err
	}

	return converter.AttendanceToResponse(attendance, patient, doctor), nil
}

func (u *attendanceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	attendance, err := u.findAttendance(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		rows, err := u.attendanceRepo.Delete(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete attendance: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrAttendanceNotFound
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionAttendanceDelete, "attendance", id, converter.AttendanceToResponse(attendance, nil, nil))
	})
}

func (u *attendanceUsecase) findAttendance(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error) {
	attendance, err := u.attendanceRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}
	return attendance, nil
}

func (u *attendanceUsecase) findParties(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Patient, *entity.Doctor, error) {
	patient, err := u.patientRepo.FindByID(ctx, db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, ErrDoctorNotFound
	}
	return patient, doctor, nil
}

func applyAttendance(attendance *entity.Attendance, req *dto.AttendanceRequest) {
	attendance.PatientID = req.PatientID
	attendance.DoctorID = req.DoctorID
	attendance.DateTime = req.DateTime
	attendance.Diagnosis = strings.TrimSpace(req.Diagnosis)
	attendance.Remarks = strings.TrimSpace(req.Remarks)
	attendance.Therapy = strings.TrimSpace(req.Therapy)
}
