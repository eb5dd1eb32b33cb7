package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func SpecializationToResponse(specialization *entity.Specialization) *dto.SpecializationResponse {
	if specialization == nil {
		return nil
	}

	return &dto.SpecializationResponse{
		ID:          specialization.ID,
		Name:        specialization.Name,
		Description: specialization.Description,
		CreatedAt:   specialization.CreatedAt,
		UpdatedAt:   specialization.UpdatedAt,
	}
}

func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i := range specializations {
		responses[i] = *SpecializationToResponse(&specializations[i])
	}
	return responses
}

func SpecializationsToSummaries(specializations []entity.Specialization) []dto.SpecializationSummary {
	summaries := make([]dto.SpecializationSummary, len(specializations))
	for i, s := range specializations {
		summaries[i] = dto.SpecializationSummary{ID: s.ID, Name: s.Name}
	}
	return summaries
}
