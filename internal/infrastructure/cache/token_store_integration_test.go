//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hospital-management/internal/testutil/containers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	store := NewRedisTokenStore(containers.NewRedisClient(t))
	userID, otherID := uuid.New(), uuid.New()

	require.NoError(t, store.Save(ctx, "access", userID, "a1", time.Minute))
	require.NoError(t, store.Save(ctx, "refresh", userID, "r1", time.Hour))
	require.NoError(t, store.Save(ctx, "access", otherID, "a2", time.Minute))
	for i := 0; i < 250; i++ {
		require.NoError(t, store.Save(ctx, "access", userID, fmt.Sprintf("bulk-%d", i), time.Minute))
	}

	exists, err := store.Exists(ctx, "refresh", userID, "r1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Revoke(ctx, "refresh", userID, "r1"))
	exists, err = store.Exists(ctx, "refresh", userID, "r1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.RevokeAll(ctx, userID))
	for _, tokenID := range []string{"a1", "bulk-0", "bulk-249"} {
		exists, err = store.Exists(ctx, "access", userID, tokenID)
		require.NoError(t, err)
		assert.False(t, exists, tokenID)
	}

	exists, err = store.Exists(ctx, "access", otherID, "a2")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.RevokeAll(ctx, uuid.New()))
}
