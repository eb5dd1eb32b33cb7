package usecase

import (
	"context"
	"strings"

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

// SpecializationUsecase manages the specialization registry. Names are
// unique ignoring case.
type SpecializationUsecase interface {
	Create(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error)
	GetAll(ctx context.Context) (*dto.SpecializationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type specializationUsecase struct {
	uow                database.UnitOfWork
	log                *logrus.Logger
	validator          *validator.CustomValidator
	specializationRepo repository.SpecializationRepository
	linkRepo           repository.DoctorSpecializationRepository
	auditService       service.AuditService
}

func NewSpecializationUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	specializationRepo repository.SpecializationRepository,
	linkRepo repository.DoctorSpecializationRepository,
	auditService service.AuditService,
) SpecializationUsecase {
	return &specializationUsecase{
		uow:                uow,
		log:                log,
		validator:          validator,
		specializationRepo: specializationRepo,
		linkRepo:           linkRepo,
		auditService:       auditService,
	}
}

func (u *specializationUsecase) Create(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	exists, err := u.specializationRepo.ExistsByName(ctx, u.uow.DB(ctx), name, nil)
	if err != nil {
		u.log.Warnf("Failed to check specialization name: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateSpecialization(name)
	}

	specialization := &entity.Specialization{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.specializationRepo.Create(ctx, tx, specialization); err != nil {
			if database.IsDuplicateKeyError(err, "name") {
				return duplicateSpecialization(name)
			}
			u.log.Warnf("Failed to create specialization: %+v", err)
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionSpecializationCreate, "specialization", specialization.ID, converter.SpecializationToResponse(specialization))
	})
	if err != nil {
		return nil, err
	}

	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error) {
	specialization, err := u.findSpecialization(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetAll(ctx context.Context) (*dto.SpecializationListResponse, error) {
	specializations, err := u.specializationRepo.FindAll(ctx, u.uow.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specializations: %+v", err)
		return nil, err
	}

	return &dto.SpecializationListResponse{
		Specializations: converter.SpecializationsToResponses(specializations),
		Total:           len(specializations),
	}, nil
}

func (u *specializationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	specialization, err := u.findSpecialization(ctx, db, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := u.specializationRepo.ExistsByName(ctx, db, name, &id)
	if err != nil {
		u.log.Warnf("Failed to check specialization name: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateSpecialization(name)
	}

	oldValue := converter.SpecializationToResponse(specialization)
	specialization.Name = name
	specialization.Description = strings.TrimSpace(req.Description)

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.specializationRepo.Update(ctx, tx, specialization); err != nil {
			if database.IsDuplicateKeyError(err, "name") {
				return duplicateSpecialization(name)
			}
			u.log.Warnf("Failed to update specialization: %+v", err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionSpecializationUpdate, "specialization", id, oldValue, converter.SpecializationToResponse(specialization))
	})
	if err != nil {
		return nil, err
	}

	return converter.SpecializationToResponse(specialization), nil
}

// Delete refuses to remove a specialization that a doctor still holds.
func (u *specializationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.uow.DB(ctx)
	specialization, err := u.findSpecialization(ctx, db, id)
	if err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		count, err := u.linkRepo.CountBySpecializationID(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to count doctor specializations: %+v", err)
			return err
		}
		if count > 0 {
			return ErrSpecializationInUse
		}

		rows, err := u.specializationRepo.Delete(ctx, tx, id)
		if err != nil {
			if database.IsForeignKeyError(err, "specialization_id") {
				return ErrSpecializationInUse
			}
			u.log.Warnf("Failed to delete specialization: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrSpecializationNotFound
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionSpecializationDelete, "specialization", id, converter.SpecializationToResponse(specialization))
	})
}

func (u *specializationUsecase) findSpecialization(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialization, error) {
	specialization, err := u.specializationRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}
	return specialization, nil
}
