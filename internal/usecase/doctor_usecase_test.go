package usecase

import (
	"testing"

	"hospital-management/internal/testutil"
	"hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_CreateRequiresSpecializations(t *testing.T) {
	f := newFixture(t)

	_, err := f.doctors.Create(f.ctx, doctorRequest("Gregory", "House", "house@mail.com"), strongPassword)
	assert.ErrorIs(t, err, ErrSpecializationRequired)
	assert.True(t, apperror.HasCode(err, apperror.CodeBadRequest))

	_, err = f.doctors.Create(f.ctx, doctorRequest("Gregory", "House", "house@mail.com", uuid.New()), strongPassword)
	assert.ErrorIs(t, err, ErrSpecializationNotFound)

	assert.Empty(t, f.store.Doctors)
	assert.Empty(t, f.store.IdentityUsers)
}

func TestDoctorUsecase_CreateLinksSpecializations(t *testing.T) {
	f := newFixture(t)
	nephrology := f.createSpecialization(t, "Nephrology")
	diagnostics := f.createSpecialization(t, "Diagnostics")

	created, err := f.doctors.Create(f.ctx, doctorRequest("Gregory", "House", "house@mail.com", nephrology, diagnostics, nephrology), strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "gregory.house@hospital.com", created.Username)
	require.Len(t, created.Specializations, 2)
	assert.Equal(t, "Diagnostics", created.Specializations[0].Name)

	f.requireLinked(t, created.ID, "Doctor")
	assert.Len(t, f.store.DoctorLinks[created.ID], 2)

	got, err := f.doctors.GetByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, created.Specializations, got.Specializations)

	list, err := f.doctors.GetAll(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Doctors[0].Specializations, 2)
}

func TestDoctorUsecase_CreateRollbackRemovesLinks(t *testing.T) {
	f := newFixture(t)
	cardiology := f.createSpecialization(t, "Cardiology")

	_, err := f.doctors.Create(f.ctx, doctorRequest("James", "Wilson", "wilson@mail.com", cardiology), "short")
	assert.True(t, apperror.HasCode(err, apperror.CodeIdentityCreation))

	assert.Empty(t, f.store.Doctors)
	assert.Empty(t, f.store.DoctorLinks)
	assert.Empty(t, f.store.Accounts)
}

func TestDoctorUsecase_UpdateReconcilesExactly(t *testing.T) {
	f := newFixture(t)
	a := f.createSpecialization(t, "Cardiology")
	b := f.createSpecialization(t, "Neurology")
	c := f.createSpecialization(t, "Oncology")

	created, err := f.doctors.Create(f.ctx, doctorRequest("Lisa", "Cuddy", "cuddy@mail.com", a, b), strongPassword)
	require.NoError(t, err)
	account := f.requireLinked(t, created.ID, "Doctor")

	f.store.ResetLinkWrites()
	_, err = f.doctors.Update(f.ctx, created.ID, doctorRequest("Lisa", "Cuddy", "cuddy@mail.com", b, a))
	require.NoError(t, err)
	assert.Empty(t, f.store.LinkWrites)

	updated, err := f.doctors.Update(f.ctx, created.ID, doctorRequest("Lisa", "Cuddy", "cuddy@mail.com", b, c))
	require.NoError(t, err)
	assert.ElementsMatch(t, []testutil.LinkWrite{
		{Op: "remove", DoctorID: created.ID, SpecializationID: a},
		{Op: "add", DoctorID: created.ID, SpecializationID: c},
	}, f.store.LinkWrites)

	ids := []uuid.UUID{updated.Specializations[0].ID, updated.Specializations[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{b, c}, ids)
	assert.Equal(t, account, f.requireLinked(t, created.ID, "Doctor"))

	_, err = f.doctors.Update(f.ctx, created.ID, doctorRequest("Lisa", "Cuddy", "cuddy@mail.com"))
	assert.ErrorIs(t, err, ErrSpecializationRequired)
	assert.Len(t, f.store.DoctorLinks[created.ID], 2)
}

func TestDoctorUsecase_Delete(t *testing.T) {
	f := newFixture(t)
	a := f.createSpecialization(t, "Cardiology")

	created, err := f.doctors.Create(f.ctx, doctorRequest("Lisa", "Cuddy", "cuddy@mail.com", a), strongPassword)
	require.NoError(t, err)
	account := f.requireLinked(t, created.ID, "Doctor")

	require.NoError(t, f.doctors.Delete(f.ctx, created.ID))
	assert.Empty(t, f.store.Doctors)
	assert.Empty(t, f.store.DoctorLinks[created.ID])
	f.requireUnlinked(t, created.ID, account.IdentityUserID)

	assert.ErrorIs(t, f.doctors.Delete(f.ctx, created.ID), ErrDoctorNotFound)
}
