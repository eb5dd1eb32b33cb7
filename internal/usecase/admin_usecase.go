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

type AdminUsecase interface {
	Create(ctx context.Context, req *dto.AdminRequest, password string) (*dto.AdminResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error)
	GetAll(ctx context.Context) (*dto.AdminListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.AdminRequest) (*dto.AdminResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminUsecase struct {
	uow            database.UnitOfWork
	log            *logrus.Logger
	validator      *validator.CustomValidator
	identity       config.IdentityConfig
	adminRepo      repository.AdminRepository
	emailGenerator service.EmailGenerator
	accountService service.AccountService
	auditService   service.AuditService
	now            func() time.Time
}

func NewAdminUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	identity config.IdentityConfig,
	adminRepo repository.AdminRepository,
	emailGenerator service.EmailGenerator,
	accountService service.AccountService,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		uow:            uow,
		log:            log,
		validator:      validator,
		identity:       identity,
		adminRepo:      adminRepo,
		emailGenerator: emailGenerator,
		accountService: accountService,
		auditService:   auditService,
		now:            time.Now,
	}
}

func (u *adminUsecase) Create(ctx context.Context, req *dto.AdminRequest, password string) (*dto.AdminResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	exists, err := u.adminRepo.ExistsByEmail(ctx, u.uow.DB(ctx), person.Email, nil)
	if err != nil {
		u.log.Warnf("Failed to check admin email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("admin", person.Email)
	}

	admin := &entity.Admin{Person: person}
	var username string

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("admin", person.Email)
			}
			u.log.Warnf("Failed to create admin: %+v", err)
			return err
		}

		username, err = u.emailGenerator.GenerateUsername(ctx, tx, person.FirstName, person.LastName, u.identity.EmailDomain)
		if err != nil {
			return err
		}

		if _, err := u.accountService.Create(ctx, tx, admin.ID, u.identity.AdminRole, username, password); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAdminCreate, "admin", admin.ID, converter.AdminToResponse(admin))
	})
	if err != nil {
		return nil, err
	}

	response := converter.AdminToResponse(admin)
	response.Username = username
	return response, nil
}

func (u *adminUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := u.findAdmin(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.AdminToResponse(admin), nil
}

func (u *adminUsecase) GetAll(ctx context.Context) (*dto.AdminListResponse, error) {
	admins, err := u.adminRepo.FindAll(ctx, u.uow.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all admins: %+v", err)
		return nil, err
	}

	return &dto.AdminListResponse{
		Admins: converter.AdminsToResponses(admins),
		Total:  len(admins),
	}, nil
}

func (u *adminUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.AdminRequest) (*dto.AdminResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	db := u.uow.DB(ctx)
	admin, err := u.findAdmin(ctx, db, id)
	if err != nil {
		return nil, err
	}

	person, err := toPerson(req.PersonRequest, u.now())
	if err != nil {
		return nil, err
	}

	exists, err := u.adminRepo.ExistsByEmail(ctx, db, person.Email, &id)
	if err != nil {
		u.log.Warnf("Failed to check admin email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, duplicateEmail("admin", person.Email)
	}

	oldValue := converter.AdminToResponse(admin)
	admin.Person = person

	err = u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := u.adminRepo.Update(ctx, tx, admin); err != nil {
			if database.IsDuplicateKeyError(err, "email") {
				return duplicateEmail("admin", person.Email)
			}
			u.log.Warnf("Failed to update admin: %+v", err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAdminUpdate, "admin", admin.ID, oldValue, converter.AdminToResponse(admin))
	})
	if err != nil {
		return nil, err
	}

	return converter.AdminToResponse(admin), nil
}

// Delete removes the admin together with its account and identity user.
func (u *adminUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	admin, err := u.findAdmin(ctx, u.uow.DB(ctx), id)
	if err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		rows, err := u.adminRepo.Delete(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete admin: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrAdminNotFound
		}

		if err := u.accountService.DeleteByUserID(ctx, tx, id); err != nil {
			return err
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionAdminDelete, "admin", id, converter.AdminToResponse(admin))
	})
}

func (u *adminUsecase) findAdmin(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	admin, err := u.adminRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}
