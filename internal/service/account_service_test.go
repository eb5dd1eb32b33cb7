package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/testutil"
	"hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AccountServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *testutil.Store
	tokens  *testutil.TokenStore
	metrics *metrics.Metrics
	service AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewStore().SeedRoles("Admin", "Doctor", "Patient")
	s.tokens = testutil.NewTokenStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewAccountService(
		testutil.NewLogger(),
		testutil.NewAccountRepository(s.store),
		newIdentityProvider(s.store),
		s.tokens,
		s.metrics,
	)
}

func (s *AccountServiceSuite) TestCreateLinksUserIdentityAndRole() {
	userID := uuid.New()

	account, err := s.service.Create(s.ctx, nil, userID, "Doctor", "john.doe@hospital.com", "Secret1!")
	s.Require().NoError(err)

	s.Equal(userID, account.UserID)
	s.Equal("Doctor", account.Role)
	s.Contains(s.store.IdentityUsers, account.IdentityUserID)
	s.Len(s.store.UserRoles[account.IdentityUserID], 1)

	found, err := s.service.FindUserIDByIdentityID(s.ctx, nil, account.IdentityUserID)
	s.Require().NoError(err)
	s.Equal(userID, found)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.AccountsProvisioned.WithLabelValues("Doctor")))
}

func (s *AccountServiceSuite) TestCreateWeakPassword() {
	_, err := s.service.Create(s.ctx, nil, uuid.New(), "Patient", "amy@hospital.com", "password")

	s.Require().Error(err)
	s.True(apperror.HasCode(err, apperror.CodeIdentityCreation))
	var appErr *apperror.Error
	s.Require().True(errors.As(err, &appErr))
	s.Equal("Passwords must have at least one non alphanumeric character. "+
		"Passwords must have at least one digit ('0'-'9'). "+
		"Passwords must have at least one uppercase ('A'-'Z').", appErr.Message)
	s.Empty(s.store.Accounts)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ProvisionFailures.WithLabelValues("Patient", "identity")))
}

func (s *AccountServiceSuite) TestCreateUnknownRole() {
	_, err := s.service.Create(s.ctx, nil, uuid.New(), "Nurse", "amy@hospital.com", "Secret1!")

	s.True(apperror.HasCode(err, apperror.CodeIdentityRole))
	s.Equal("Role Nurse does not exist.", err.Error())
	s.Empty(s.store.Accounts)
}

func (s *AccountServiceSuite) TestCreateAccountRowFailure() {
	boom := errors.New("insert failed")
	s.store.Fail("account.create", boom)

	_, err := s.service.Create(s.ctx, nil, uuid.New(), "Admin", "root@hospital.com", "Secret1!")
	s.ErrorIs(err, boom)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ProvisionFailures.WithLabelValues("Admin", "account")))
}

func (s *AccountServiceSuite) TestDeleteByUserID() {
	userID := uuid.New()
	account, err := s.service.Create(s.ctx, nil, userID, "Admin", "root@hospital.com", "Secret1!")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteByUserID(s.ctx, nil, userID))
	s.Empty(s.store.Accounts)
	s.NotContains(s.store.IdentityUsers, account.IdentityUserID)
	s.Empty(s.store.UserRoles[account.IdentityUserID])
	s.Equal(1.0, promtest.ToFloat64(s.metrics.AccountsDeleted.WithLabelValues("Admin")))

	s.ErrorIs(s.service.DeleteByUserID(s.ctx, nil, userID), ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestDeleteRollsBackWithIdentityFailure() {
	userID := uuid.New()
	_, err := s.service.Create(s.ctx, nil, userID, "Admin", "root@hospital.com", "Secret1!")
	s.Require().NoError(err)

	boom := errors.New("identity store down")
	s.store.Fail("identity_user.delete", boom)
	uow := testutil.NewUnitOfWork(s.store)

	err = uow.Execute(s.ctx, func(ctx context.Context, _ *gorm.DB) error {
		return s.service.DeleteByUserID(ctx, nil, userID)
	})
	s.ErrorIs(err, boom)
	s.Len(s.store.Accounts, 1)
	s.Len(s.store.IdentityUsers, 1)
	s.Equal(0.0, promtest.ToFloat64(s.metrics.AccountsDeleted.WithLabelValues("Admin")))
}

func (s *AccountServiceSuite) TestDeleteRevokesTokensAfterCommit() {
	userID, otherID := uuid.New(), uuid.New()
	_, err := s.service.Create(s.ctx, nil, userID, "Doctor", "john.doe@hospital.com", "Secret1!")
	s.Require().NoError(err)

	s.Require().NoError(s.tokens.Save(s.ctx, "access", userID, "a1", time.Minute))
	s.Require().NoError(s.tokens.Save(s.ctx, "refresh", userID, "r1", time.Hour))
	s.Require().NoError(s.tokens.Save(s.ctx, "access", otherID, "a2", time.Minute))

	uow := testutil.NewUnitOfWork(s.store)
	err = uow.Execute(s.ctx, func(ctx context.Context, _ *gorm.DB) error {
		if err := s.service.DeleteByUserID(ctx, nil, userID); err != nil {
			return err
		}
		s.Len(s.tokens.Tokens, 3, "tokens stay until commit")
		return nil
	})
	s.Require().NoError(err)

	s.Len(s.tokens.Tokens, 1)
	exists, err := s.tokens.Exists(s.ctx, "access", otherID, "a2")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *AccountServiceSuite) TestProvisionedCountedOnlyOnCommit() {
	uow := testutil.NewUnitOfWork(s.store)
	boom := errors.New("audit insert failed")

	err := uow.Execute(s.ctx, func(ctx context.Context, _ *gorm.DB) error {
		if _, err := s.service.Create(ctx, nil, uuid.New(), "Patient", "amy.lee@hospital.com", "Secret1!"); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(0.0, promtest.ToFloat64(s.metrics.AccountsProvisioned.WithLabelValues("Patient")))

	err = uow.Execute(s.ctx, func(ctx context.Context, _ *gorm.DB) error {
		_, err := s.service.Create(ctx, nil, uuid.New(), "Patient", "amy.lee@hospital.com", "Secret1!")
		return err
	})
	s.Require().NoError(err)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.AccountsProvisioned.WithLabelValues("Patient")))
}

func (s *AccountServiceSuite) TestFindUserIDByIdentityIDNotFound() {
	_, err := s.service.FindUserIDByIdentityID(s.ctx, nil, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
	s.True(apperror.HasCode(err, apperror.CodeNotFound))
}
