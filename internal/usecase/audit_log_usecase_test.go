package usecase

import (
	"context"
	"testing"

	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_RecordsEntityChanges(t *testing.T) {
	f := newFixture(t)
	actor := uuid.New()
	ctx := jwt.WithClaims(context.Background(), &jwt.Claims{UserID: actor, Role: "Admin"})

	created, err := f.specializations.Create(ctx, specializationRequest("Cardiology"))
	require.NoError(t, err)
	_, err = f.specializations.Update(ctx, created.ID, specializationRequest("Cardiac Surgery"))
	require.NoError(t, err)

	list, err := f.auditLogs.GetAllAuditLogs(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	newest := list.Logs[0]
	assert.Equal(t, entity.AuditActionSpecializationUpdate, newest.Action)
	require.NotNil(t, newest.UserID)
	assert.Equal(t, actor, *newest.UserID)
	assert.Equal(t, "specialization", newest.Metadata["entity"])
	assert.Equal(t, created.ID.String(), newest.Metadata["entity_id"])
	assert.NotNil(t, newest.Metadata["old_value"])

	got, err := f.auditLogs.GetAuditLog(f.ctx, newest.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.Action, got.Action)

	_, err = f.auditLogs.GetAuditLog(f.ctx, 999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}

func TestAuditLogUsecase_FailedAuditRollsBackChange(t *testing.T) {
	f := newFixture(t)
	f.store.Fail("audit_log.create", assert.AnError)

	_, err := f.specializations.Create(f.ctx, specializationRequest("Cardiology"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, f.store.Specializations)
	assert.Empty(t, f.store.AuditLogs)
}

func TestAuditLogUsecase_FailedAuditLeavesProvisionUncounted(t *testing.T) {
	f := newFixture(t)
	f.store.Fail("audit_log.create", assert.AnError)

	_, err := f.admins.Create(f.ctx, adminRequest("John", "Doe", "john@mail.com"), strongPassword)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, f.store.Accounts)
	assert.Equal(t, 0.0, promtest.ToFloat64(f.metrics.AccountsProvisioned.WithLabelValues("Admin")))

	f.store.Fail("audit_log.create", nil)
	_, err = f.admins.Create(f.ctx, adminRequest("John", "Doe", "john@mail.com"), strongPassword)
	require.NoError(t, err)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.AccountsProvisioned.WithLabelValues("Admin")))
}
