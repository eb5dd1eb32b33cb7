package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenKey(t *testing.T) {
	userID := uuid.MustParse("7f0c8a3e-5b1d-4d8e-9a55-1f2b3c4d5e6f")

	assert.Equal(t, "access_token:7f0c8a3e-5b1d-4d8e-9a55-1f2b3c4d5e6f:abc", TokenKey("access", userID, "abc"))
	assert.Equal(t, "refresh_token:7f0c8a3e-5b1d-4d8e-9a55-1f2b3c4d5e6f:xyz", TokenKey("refresh", userID, "xyz"))
}

func TestUserTokenPattern(t *testing.T) {
	userID := uuid.MustParse("7f0c8a3e-5b1d-4d8e-9a55-1f2b3c4d5e6f")
	other := uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")

	pattern := UserTokenPattern(userID)
	assert.Equal(t, "*_token:7f0c8a3e-5b1d-4d8e-9a55-1f2b3c4d5e6f:*", pattern)
	assert.NotContains(t, TokenKey("access", other, "abc"), userID.String())
}
