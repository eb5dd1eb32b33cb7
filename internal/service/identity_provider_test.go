package service

import (
	"context"
	"errors"
	"testing"

	"hospital-management/config"
	"hospital-management/internal/testutil"
	"hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityProvider(store *testutil.Store) IdentityProvider {
	return NewIdentityProvider(
		testutil.NewLogger(),
		testutil.NewIdentityUserRepository(store),
		testutil.NewRoleRepository(store),
		config.DefaultPasswordPolicy(),
	)
}

func TestIdentityProvider_CreateUser(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	provider := newIdentityProvider(store)

	id, err := provider.CreateUser(ctx, nil, "john.doe@hospital.com", "Secret1!")
	require.NoError(t, err)
	require.Contains(t, store.IdentityUsers, id)

	user := store.IdentityUsers[id]
	assert.Equal(t, "JOHN.DOE@HOSPITAL.COM", user.NormalizedUserName)
	assert.Equal(t, "john.doe@hospital.com", user.Email)
	assert.NotEqual(t, "Secret1!", user.PasswordHash)
	assert.Len(t, user.SecurityStamp, 32)

	exists, err := provider.EmailExists(ctx, nil, "John.Doe@Hospital.com")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("username taken", func(t *testing.T) {
		_, err := provider.CreateUser(ctx, nil, "JOHN.DOE@hospital.com", "Secret1!")
		var idErr *IdentityError
		require.True(t, errors.As(err, &idErr))
		assert.Equal(t, []string{"Username 'JOHN.DOE@hospital.com' is already taken."}, idErr.Descriptions)
	})

	t.Run("password policy", func(t *testing.T) {
		_, err := provider.CreateUser(ctx, nil, "jane@hospital.com", "abc")
		var idErr *IdentityError
		require.True(t, errors.As(err, &idErr))
		assert.Equal(t, []string{
			"Passwords must be at least 6 characters.",
			"Passwords must have at least one non alphanumeric character.",
			"Passwords must have at least one digit ('0'-'9').",
			"Passwords must have at least one uppercase ('A'-'Z').",
		}, idErr.Descriptions)
		assert.Len(t, store.IdentityUsers, 1)
	})

	t.Run("length counts characters", func(t *testing.T) {
		// 3 characters, 6 bytes
		_, err := provider.CreateUser(ctx, nil, "kim@hospital.com", "Ä1€")
		var idErr *IdentityError
		require.True(t, errors.As(err, &idErr))
		assert.Contains(t, idErr.Descriptions, "Passwords must be at least 6 characters.")
		assert.Len(t, store.IdentityUsers, 1)
	})
}

func TestIdentityProvider_Roles(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	provider := newIdentityProvider(store)

	require.NoError(t, provider.EnsureRoles(ctx, nil, "Admin", "Doctor"))
	require.NoError(t, provider.EnsureRoles(ctx, nil, "Admin", "Doctor", "Patient"))
	assert.Len(t, store.Roles, 3)

	id, err := provider.CreateUser(ctx, nil, "amy@hospital.com", "Secret1!")
	require.NoError(t, err)

	require.NoError(t, provider.AddToRole(ctx, nil, id, "Doctor"))
	names, err := provider.RoleNames(ctx, nil, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Doctor"}, names)

	err = provider.AddToRole(ctx, nil, id, "Doctor")
	var idErr *IdentityError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, "User already in role 'Doctor'.", idErr.Error())

	err = provider.AddToRole(ctx, nil, id, "Nurse")
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, "Role Nurse does not exist.", idErr.Error())

	require.NoError(t, provider.DeleteUser(ctx, nil, id))
	assert.NotContains(t, store.IdentityUsers, id)
	assert.NotContains(t, store.UserRoles, id)

	err = provider.DeleteUser(ctx, nil, id)
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
}

func TestIdentityProvider_CheckPassword(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	provider := newIdentityProvider(store)

	id, err := provider.CreateUser(ctx, nil, "sam@hospital.com", "Secret1!")
	require.NoError(t, err)

	user, err := provider.CheckPassword(ctx, nil, "SAM@hospital.com", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = provider.CheckPassword(ctx, nil, "sam@hospital.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = provider.CheckPassword(ctx, nil, "nobody@hospital.com", "Secret1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotEqual(t, uuid.Nil, id)
}
