package usecase

import (
	"errors"
	"testing"

	"hospital-management/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_DuplicateEmailCreatesNothing(t *testing.T) {
	f := newFixture(t)

	first, err := f.patients.Create(f.ctx, patientRequest("Mary", "Major", "mary@mail.com"), strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "O+", first.BloodType)
	assert.Equal(t, "mary.major@hospital.com", first.Username)
	f.requireLinked(t, first.ID, "Patient")

	_, err = f.patients.Create(f.ctx, patientRequest("Maria", "Minor", "Mary@Mail.com"), strongPassword)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateRecord))

	assert.Len(t, f.store.Patients, 1)
	assert.Len(t, f.store.Accounts, 1)
	assert.Len(t, f.store.IdentityUsers, 1)
}

func TestPatientUsecase_InvalidBloodType(t *testing.T) {
	f := newFixture(t)

	req := patientRequest("Mary", "Major", "mary@mail.com")
	req.BloodType = "C+"

	_, err := f.patients.Create(f.ctx, req, strongPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeBadRequest))
	assert.Equal(t, "BloodType must be one of [A+ A- B+ B- AB+ AB- O+ O-]", err.Error())
}

func TestPatientUsecase_AccountFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("accounts table unavailable")
	f.store.Fail("account.create", boom)

	_, err := f.patients.Create(f.ctx, patientRequest("Mary", "Major", "mary@mail.com"), strongPassword)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.store.Patients)
	assert.Empty(t, f.store.IdentityUsers)
	assert.Empty(t, f.store.UserRoles)
}

func TestPatientUsecase_UpdateKeepsAccount(t *testing.T) {
	f := newFixture(t)

	created, err := f.patients.Create(f.ctx, patientRequest("Mary", "Major", "mary@mail.com"), strongPassword)
	require.NoError(t, err)
	account := f.requireLinked(t, created.ID, "Patient")

	req := patientRequest("Mary", "Major-Smith", "mary@mail.com")
	req.BloodType = "AB-"
	updated, err := f.patients.Update(f.ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "AB-", updated.BloodType)
	assert.Equal(t, "Major-Smith", updated.LastName)

	assert.Equal(t, account, f.requireLinked(t, created.ID, "Patient"))
	assert.Equal(t, "mary.major@hospital.com", f.store.IdentityUsers[account.IdentityUserID].UserName)

	require.NoError(t, f.patients.Delete(f.ctx, created.ID))
	f.requireUnlinked(t, created.ID, account.IdentityUserID)
}
