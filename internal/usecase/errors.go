package usecase

import (
	"hospital-management/internal/service"
	"hospital-management/pkg/apperror"
)

var (
	ErrAdminNotFound          = apperror.New(apperror.CodeNotFound, "admin not found")
	ErrDoctorNotFound         = apperror.New(apperror.CodeNotFound, "doctor not found")
	ErrPatientNotFound        = apperror.New(apperror.CodeNotFound, "patient not found")
	ErrSpecializationNotFound = apperror.New(apperror.CodeNotFound, "specialization not found")
	ErrAttendanceNotFound     = apperror.New(apperror.CodeNotFound, "attendance not found")
	ErrAuditLogNotFound       = apperror.New(apperror.CodeNotFound, "audit log not found")
	ErrAccountNotFound        = service.ErrAccountNotFound

	ErrSpecializationRequired = apperror.New(apperror.CodeBadRequest, "at least one specialization is required")
	ErrSpecializationInUse    = apperror.New(apperror.CodeConflict, "specialization is assigned to one or more doctors")
	ErrDateOfBirthInFuture    = apperror.New(apperror.CodeBadRequest, "DateOfBirth must not be in the future")
	ErrAttendanceInPast       = apperror.New(apperror.CodeBadRequest, "DateTime must not be in the past")
	ErrInvalidToken           = apperror.New(apperror.CodeUnauthorized, "invalid or expired token")
	ErrTokenRevoked           = apperror.New(apperror.CodeUnauthorized, "token has been revoked")
)

func duplicateEmail(kind, email string) error {
	return apperror.Newf(apperror.CodeDuplicateRecord, "%s with email %s already exists", kind, email)
}

func duplicateSpecialization(name string) error {
	return apperror.Newf(apperror.CodeDuplicateRecord, "specialization %s already exists", name)
}
