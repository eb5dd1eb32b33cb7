package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity and its specializations to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor, specializations []entity.Specialization) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		PersonResponse:  PersonToResponse(doctor.Person),
		Specializations: SpecializationsToSummaries(specializations),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}
