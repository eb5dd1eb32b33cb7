package service

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAccountNotFound = apperror.New(apperror.CodeNotFound, "account not found")

// AccountService links domain users (admins, doctors, patients) to identity
// users. Every method runs on the handle it is given and never commits.
type AccountService interface {
	Create(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role, username, password string) (*entity.Account, error)
	FindUserIDByIdentityID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (uuid.UUID, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Account, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type accountService struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	identity    IdentityProvider
	tokens      cache.TokenStore
	metrics     *metrics.Metrics
}

func NewAccountService(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	identity IdentityProvider,
	tokens cache.TokenStore,
	m *metrics.Metrics,
) AccountService {
	return &accountService{
		log:         log,
		accountRepo: accountRepo,
		identity:    identity,
		tokens:      tokens,
		metrics:     m,
	}
}

func (s *accountService) Create(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role, username, password string) (*entity.Account, error) {
	identityUserID, err := s.identity.CreateUser(ctx, tx, username, password)
	if err != nil {
		s.metrics.IncrementProvisionFailures(role, "identity")
		var idErr *IdentityError
		if errors.As(err, &idErr) {
			return nil, apperror.New(apperror.CodeIdentityCreation, idErr.Error())
		}
		return nil, err
	}

	if err := s.identity.AddToRole(ctx, tx, identityUserID, role); err != nil {
		s.metrics.IncrementProvisionFailures(role, "role")
		var idErr *IdentityError
		if errors.As(err, &idErr) {
			return nil, apperror.New(apperror.CodeIdentityRole, idErr.Error())
		}
		return nil, err
	}

	account := &entity.Account{
		UserID:         userID,
		IdentityUserID: identityUserID,
		Role:           role,
	}
	if err := s.accountRepo.Create(ctx, tx, account); err != nil {
		s.metrics.IncrementProvisionFailures(role, "account")
		s.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	database.AfterCommit(ctx, func() {
		s.metrics.IncrementAccountsProvisioned(role)
	})
	return account, nil
}

func (s *accountService) FindUserIDByIdentityID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (uuid.UUID, error) {
	account, err := s.accountRepo.FindByIdentityUserID(ctx, db, identityUserID)
	if err != nil {
		s.log.Warnf("Failed to find account: %+v", err)
		return uuid.Nil, err
	}
	if account == nil {
		return uuid.Nil, ErrAccountNotFound
	}
	return account.UserID, nil
}

func (s *accountService) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindByUserID(ctx, db, userID)
	if err != nil {
		s.log.Warnf("Failed to find account: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// DeleteByUserID removes the account row and then its identity user. Both
// run on tx, so a failure in the second step undoes the first. The user's
// tokens are revoked once the deletion commits.
func (s *accountService) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	account, err := s.FindByUserID(ctx, tx, userID)
	if err != nil {
		return err
	}

	if err := s.accountRepo.Delete(ctx, tx, account.ID); err != nil {
		s.log.Warnf("Failed to delete account: %+v", err)
		return err
	}

	if err := s.identity.DeleteUser(ctx, tx, account.IdentityUserID); err != nil {
		s.log.Warnf("Failed to delete identity user: %+v", err)
		return err
	}

	database.AfterCommit(ctx, func() {
		s.metrics.IncrementAccountsDeleted(account.Role)
		if err := s.tokens.RevokeAll(context.WithoutCancel(ctx), userID); err != nil {
			s.log.Warnf("Failed to revoke tokens: %+v", err)
		}
	})
	return nil
}
