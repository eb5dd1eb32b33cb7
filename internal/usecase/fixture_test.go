package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/service"
	"hospital-management/internal/testutil"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Secret1!"

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	store *testutil.Store
	uow   *testutil.UnitOfWork
	cfg   config.IdentityConfig

	identity service.IdentityProvider
	accounts service.AccountService
	tokens   *testutil.TokenStore
	jwt      *jwt.JWTService
	metrics  *metrics.Metrics

	admins          AdminUsecase
	doctors         DoctorUsecase
	patients        PatientUsecase
	specializations SpecializationUsecase
	attendances     AttendanceUsecase
	auth            AuthUsecase
	auditLogs       AuditLogUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := testutil.NewLogger()
	v := validator.NewValidator()
	cfg := config.IdentityConfig{
		EmailDomain:    "hospital.com",
		AdminRole:      "Admin",
		DoctorRole:     "Doctor",
		PatientRole:    "Patient",
		PasswordPolicy: config.DefaultPasswordPolicy(),
	}

	store := testutil.NewStore().SeedRoles(cfg.Roles()...)
	uow := testutil.NewUnitOfWork(store)

	adminRepo := testutil.NewAdminRepository(store)
	doctorRepo := testutil.NewDoctorRepository(store)
	patientRepo := testutil.NewPatientRepository(store)
	specializationRepo := testutil.NewSpecializationRepository(store)
	linkRepo := testutil.NewDoctorSpecializationRepository(store)
	attendanceRepo := testutil.NewAttendanceRepository(store)
	auditRepo := testutil.NewAuditLogRepository(store)

	tokens := testutil.NewTokenStore()
	appMetrics := metrics.New(prometheus.NewRegistry())

	identity := service.NewIdentityProvider(log, testutil.NewIdentityUserRepository(store), testutil.NewRoleRepository(store), cfg.PasswordPolicy)
	accounts := service.NewAccountService(log, testutil.NewAccountRepository(store), identity, tokens, appMetrics)
	emails := service.NewEmailGenerator(log, identity)
	linker := service.NewSpecializationLinker(log, linkRepo)
	audit := service.NewAuditService(log, auditRepo)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute, RefreshExpiry: time.Hour})

	admins := NewAdminUsecase(uow, log, v, cfg, adminRepo, emails, accounts, audit)
	admins.(*adminUsecase).now = func() time.Time { return fixedNow }
	doctors := NewDoctorUsecase(uow, log, v, cfg, doctorRepo, specializationRepo, linkRepo, linker, emails, accounts, audit)
	doctors.(*doctorUsecase).now = func() time.Time { return fixedNow }
	patients := NewPatientUsecase(uow, log, v, cfg, patientRepo, emails, accounts, audit)
	patients.(*patientUsecase).now = func() time.Time { return fixedNow }
	attendances := NewAttendanceUsecase(uow, log, v, attendanceRepo, patientRepo, doctorRepo, audit)
	attendances.(*attendanceUsecase).now = func() time.Time { return fixedNow }

	return &fixture{
		ctx:             context.Background(),
		store:           store,
		uow:             uow,
		cfg:             cfg,
		identity:        identity,
		accounts:        accounts,
		tokens:          tokens,
		jwt:             jwtService,
		metrics:         appMetrics,
		admins:          admins,
		doctors:         doctors,
		patients:        patients,
		specializations: NewSpecializationUsecase(uow, log, v, specializationRepo, linkRepo, audit),
		attendances:     attendances,
		auth:            NewAuthUsecase(uow, log, identity, accounts, audit, jwtService, tokens),
		auditLogs:       NewAuditLogUsecase(uow, log, auditRepo),
	}
}

// requireLinked asserts that userID has exactly one account and that its
// identity user exists with the expected role.
func (f *fixture) requireLinked(t *testing.T, userID uuid.UUID, role string) entity.Account {
	t.Helper()

	var found []entity.Account
	for _, a := range f.store.Accounts {
		if a.UserID == userID {
			found = append(found, a)
		}
	}
	require.Len(t, found, 1)
	require.Contains(t, f.store.IdentityUsers, found[0].IdentityUserID)

	roles, err := f.identity.RoleNames(f.ctx, nil, found[0].IdentityUserID)
	require.NoError(t, err)
	require.Equal(t, []string{role}, roles)
	return found[0]
}

func (f *fixture) requireUnlinked(t *testing.T, userID uuid.UUID, identityUserID uuid.UUID) {
	t.Helper()
	for _, a := range f.store.Accounts {
		require.NotEqual(t, userID, a.UserID)
	}
	require.NotContains(t, f.store.IdentityUsers, identityUserID)
}

func (f *fixture) createSpecialization(t *testing.T, name string) uuid.UUID {
	t.Helper()
	resp, err := f.specializations.Create(f.ctx, specializationRequest(name))
	require.NoError(t, err)
	return resp.ID
}
