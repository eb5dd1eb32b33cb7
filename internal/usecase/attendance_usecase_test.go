package usecase

import (
	"testing"
	"time"

	"hospital-management/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceParties struct {
	patientID uuid.UUID
	doctorID  uuid.UUID
}

func (f *fixture) seedParties(t *testing.T) attendanceParties {
	t.Helper()

	patient, err := f.patients.Create(f.ctx, patientRequest("Mary", "Major", "mary@mail.com"), strongPassword)
	require.NoError(t, err)
	doctor, err := f.doctors.Create(f.ctx, doctorRequest("Gregory", "House", "house@mail.com", f.createSpecialization(t, "Diagnostics")), strongPassword)
	require.NoError(t, err)

	return attendanceParties{patientID: patient.ID, doctorID: doctor.ID}
}

func attendanceRequest(p attendanceParties, at time.Time) *dto.AttendanceRequest {
	return &dto.AttendanceRequest{
		PatientID: p.patientID,
		DoctorID:  p.doctorID,
		DateTime:  at,
		Diagnosis: "Seasonal flu",
		Remarks:   "Rest for three days",
		Therapy:   "Paracetamol",
	}
}

func TestAttendanceUsecase_Create(t *testing.T) {
	f := newFixture(t)
	parties := f.seedParties(t)

	_, err := f.attendances.Create(f.ctx, attendanceRequest(parties, fixedNow.Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrAttendanceInPast)
	assert.Empty(t, f.store.Attendances)

	created, err := f.attendances.Create(f.ctx, attendanceRequest(parties, fixedNow.Add(5*time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "Mary Major", created.PatientName)
	assert.Equal(t, "Gregory House", created.DoctorName)

	got, err := f.attendances.GetByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seasonal flu", got.Diagnosis)
	assert.True(t, got.DateTime.Equal(fixedNow.Add(5*time.Minute)))
}

func TestAttendanceUsecase_UnknownParties(t *testing.T) {
	f := newFixture(t)
	parties := f.seedParties(t)

	_, err := f.attendances.Create(f.ctx, attendanceRequest(attendanceParties{patientID: uuid.New(), doctorID: parties.doctorID}, fixedNow.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.attendances.Create(f.ctx, attendanceRequest(attendanceParties{patientID: parties.patientID, doctorID: uuid.New()}, fixedNow.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	assert.Empty(t, f.store.Attendances)
}

func TestAttendanceUsecase_ListsAreOrderedByDateTime(t *testing.T) {
	f := newFixture(t)
	parties := f.seedParties(t)

	late, err := f.attendances.Create(f.ctx, attendanceRequest(parties, fixedNow.Add(48*time.Hour)))
	require.NoError(t, err)
	early, err := f.attendances.Create(f.ctx, attendanceRequest(parties, fixedNow.Add(time.Hour)))
	require.NoError(t, err)

	byPatient, err := f.attendances.ListByPatient(f.ctx, parties.patientID)
	require.NoError(t, err)
	require.Equal(t, 2, byPatient.Total)
	assert.Equal(t, early.ID, byPatient.Attendances[0].ID)
	assert.Equal(t, late.ID, byPatient.Attendances[1].ID)

	byDoctor, err := f.attendances.ListByDoctor(f.ctx, parties.doctorID)
	require.NoError(t, err)
	assert.Equal(t, byPatient.Attendances, byDoctor.Attendances)

	none, err := f.attendances.ListByDoctor(f.ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, none.Total)
}

func TestAttendanceUsecase_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	parties := f.seedParties(t)

	created, err := f.attendances.Create(f.ctx, attendanceRequest(parties, fixedNow.Add(time.Hour)))
	require.NoError(t, err)

	req := attendanceRequest(parties, fixedNow.Add(2*time.Hour))
	req.Diagnosis = "  Bronchitis "
	updated, err := f.attendances.Update(f.ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Bronchitis", updated.Diagnosis)

	_, err = f.attendances.Update(f.ctx, uuid.New(), req)
	assert.ErrorIs(t, err, ErrAttendanceNotFound)

	require.NoError(t, f.attendances.Delete(f.ctx, created.ID))
	assert.ErrorIs(t, f.attendances.Delete(f.ctx, created.ID), ErrAttendanceNotFound)
}
