package service

import (
	"context"
	"testing"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/testutil"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService(t *testing.T) {
	store := testutil.NewStore()
	audit := NewAuditService(testutil.NewLogger(), testutil.NewAuditLogRepository(store))

	actor := uuid.New()
	ctx := jwt.WithClaims(context.Background(), &jwt.Claims{UserID: actor, Role: "Admin"})
	specID := uuid.New()

	require.NoError(t, audit.LogCreate(ctx, nil, entity.AuditActionSpecializationCreate, "specialization", specID, map[string]string{"name": "Cardiology"}))
	require.NoError(t, audit.LogDelete(context.Background(), nil, entity.AuditActionSpecializationDelete, "specialization", specID, nil))

	require.Len(t, store.AuditLogs, 2)

	created := store.AuditLogs[0]
	require.NotNil(t, created.UserID)
	assert.Equal(t, actor, *created.UserID)
	assert.Equal(t, entity.AuditActionSpecializationCreate, created.Action)
	assert.Equal(t, "specialization", created.Metadata["entity"])
	assert.Equal(t, specID.String(), created.Metadata["entity_id"])
	assert.Nil(t, created.Metadata["old_value"])

	assert.Nil(t, store.AuditLogs[1].UserID)
}
