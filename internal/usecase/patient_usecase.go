package usecase

import (
	"context"
	"time"

	"hospital-management/config"
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

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientRequest, password string) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) (*dto.PatientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	uow            database.UnitOfWork
	log            *logrus.Logger
	validator      *validator.CustomValidator
	identity       config.IdentityConfig
	patientRepo      repository.PatientRepository
	emailGenerator service.EmailGenerator
	accountService service.AccountService
	auditService   service.AuditService
	now            func() time.Time
}

func NewPatientUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	identity config.IdentityConfig,
	patientRepo repository.PatientRepository,
	emailGenerator service.EmailGenerator,
	accountService service.AccountService,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		uow:            uow,
		log:            log,
		validator:      validator,
		identity:       identity,
		patientRepo:      patientRepo,
		emailGenerator: emailGenerator,
		accountService: accountService,
		auditService:   auditService,
		now:            time.Now,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest, password string) (*dto.PatientResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	exists, err := u.patientRepo.ExistsByEmail(ctx, u.uow.DB(ctx), person.Email, nil)
	if err != nil {
		u.log.Warnf("Failed to check patient email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("patient", person.Email)
	}

	patient := &entity.Patient{Person: person, BloodType: entity.BloodType(req.BloodType)}
	var username string

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("patient", person.Email)
			}
			u.log.Warnf("Failed to create patient: %+v", err)
			return err
		}

		username, err = u.emailGenerator.GenerateUsername(ctx, tx, person.FirstName, person.LastName, u.identity.EmailDomain)
		if err != nil {
			return err
		}

		if _, err := u.accountService.Create(ctx, tx, patient.ID, u.identity.PatientRole, username, password); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", patient.ID, converter.PatientToResponse(patient))
	})
	if err != nil {
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	response.Username = username
	return response, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.findPatient(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.uow.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	patient, err := u.findPatient(ctx, db, id)
	if err != nil {
		return nil, err
	}

	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	exists, err := u.patientRepo.ExistsByEmail(ctx, db, person.Email, &id)
	if err != nil {
		u.log.Warnf("Failed to check patient email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("patient", person.Email)
	}

	oldValue := converter.PatientToResponse(patient)
	patient.Person = person
	patient.BloodType = entity.BloodType(req.BloodType)

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("patient", person.Email)
			}
			u.log.Warnf("Failed to update patient: %+v", err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "patient", patient.ID, oldValue, converter.PatientToResponse(patient))
	})
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete removes the patient, its account and identity user. Attendance
// records of the patient are kept.
func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.findPatient(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		rows, err := u.patientRepo.Delete(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete patient: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrPatientNotFound
		}

		if err := u.accountService.DeleteByUserID(ctx, tx, id); err != nil {
			return err
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient))
	})
}

func (u *patientUsecase) findPatient(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}
