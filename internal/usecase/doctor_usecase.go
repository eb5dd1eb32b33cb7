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

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.DoctorRequest, password string) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	uow                database.UnitOfWork
	log                *logrus.Logger
	validator          *validator.CustomValidator
	identity           config.IdentityConfig
	doctorRepo         repository.DoctorRepository
	specializationRepo repository.SpecializationRepository
	linkRepo           repository.DoctorSpecializationRepository
	linker             service.SpecializationLinker
	emailGenerator     service.EmailGenerator
	accountService     service.AccountService
	auditService       service.AuditService
	now                func() time.Time
}

func NewDoctorUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	identity config.IdentityConfig,
	doctorRepo repository.DoctorRepository,
	specializationRepo repository.SpecializationRepository,
	linkRepo repository.DoctorSpecializationRepository,
	linker service.SpecializationLinker,
	emailGenerator service.EmailGenerator,
	accountService service.AccountService,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		uow:                uow,
		log:                log,
		validator:          validator,
		identity:           identity,
		doctorRepo:         doctorRepo,
		specializationRepo: specializationRepo,
		linkRepo:           linkRepo,
		linker:             linker,
		emailGenerator:     emailGenerator,
		accountService:     accountService,
		auditService:       auditService,
		now:                time.Now,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest, password string) (*dto.DoctorResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	exists, err := u.doctorRepo.ExistsByEmail(ctx, db, person.Email, nil)
	if err != nil {
		u.log.Warnf("Failed to check doctor email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("doctor", person.Email)
	}

	specializations, err := u.resolveSpecializations(ctx, db, req.SpecializationIDs)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{Person: person}
	var username string

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("doctor", person.Email)
			}
			u.log.Warnf("Failed to create doctor: %+v", err)
			return err
		}

		if err := u.linker.Reconcile(ctx, tx, doctor.ID, specializationIDs(specializations)); err != nil {
			return err
		}

		username, err = u.emailGenerator.GenerateUsername(ctx, tx, person.FirstName, person.LastName, u.identity.EmailDomain)
		if err != nil {
			return err
		}

		if _, err := u.accountService.Create(ctx, tx, doctor.ID, u.identity.DoctorRole, username, password); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, converter.DoctorToResponse(doctor, specializations))
	})
	if err != nil {
		return nil, err
	}

	response := converter.DoctorToResponse(doctor, specializations)
	response.Username = username
	return response, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	db := u.uow.DB(ctx)
	doctor, err := u.findDoctor(ctx, db, id)
	if err != nil {
		return nil, err
	}

	specializations, err := u.currentSpecializations(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor, specializations), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	db := u.uow.DB(ctx)
	doctors, err := u.doctorRepo.FindAll(ctx, db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		specializations, err := u.currentSpecializations(ctx, db, doctors[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i] = *converter.DoctorToResponse(&doctors[i], specializations)
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

// Update overwrites the doctor's fields and reconciles its specializations.
// The linked account and identity user are left untouched.
func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	doctor, err := u.findDoctor(ctx, db, id)
	if err != nil {
		return nil, err
	}

	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	exists, err := u.doctorRepo.ExistsByEmail(ctx, db, person.Email, &id)
	if err != nil {
		u.log.Warnf("Failed to check doctor email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("doctor", person.Email)
	}

	specializations, err := u.resolveSpecializations(ctx, db, req.SpecializationIDs)
	if err != nil {
		return nil, err
	}

	previous, err := u.currentSpecializations(ctx, db, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.DoctorToResponse(doctor, previous)
	doctor.Person = person

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("doctor", person.Email)
			}
			u.log.Warnf("Failed to update doctor: %+v", err)
			return err
		}

		if err := u.linker.Reconcile(ctx, tx, doctor.ID, specializationIDs(specializations)); err != nil {
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", doctor.ID, oldValue, converter.DoctorToResponse(doctor, specializations))
	})
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor, specializations), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.uow.DB(ctx)
	doctor, err := u.findDoctor(ctx, db, id)
	if err != nil {
		return err
	}

	specializations, err := u.currentSpecializations(ctx, db, id)
	if err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.linker.RemoveAll(ctx, tx, id); err != nil {
			return err
		}

		rows, err := u.doctorRepo.Delete(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete doctor: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrDoctorNotFound
		}

		if err := u.accountService.DeleteByUserID(ctx, tx, id); err != nil {
			return err
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, "doctor", id, converter.DoctorToResponse(doctor, specializations))
	})
}

func (u *doctorUsecase) findDoctor(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

// resolveSpecializations requires a non-empty set of existing specializations.
func (u *doctorUsecase) resolveSpecializations(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, ErrSpecializationRequired
	}

	specializations, err := u.specializationRepo.FindByIDs(ctx, db, ids)
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}
	if len(specializations) != len(ids) {
		return nil, ErrSpecializationNotFound
	}
	return specializations, nil
}

func (u *doctorUsecase) currentSpecializations(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Specialization, error) {
	ids, err := u.linkRepo.FindSpecializationIDs(ctx, db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor specializations: %+v", err)
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	specializations, err := u.specializationRepo.FindByIDs(ctx, db, ids)
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}
	return specializations, nil
}

func specializationIDs(specializations []entity.Specialization) []uuid.UUID {
	ids := make([]uuid.UUID, len(specializations))
	for i, s := range specializations {
		ids[i] = s.ID
	}
	return ids
}
