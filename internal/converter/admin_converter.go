package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// AdminToResponse converts an Admin entity to AdminResponse DTO
func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	if admin == nil {
		return nil
	}

	return &dto.AdminResponse{
		ID:             admin.ID,
		PersonResponse: PersonToResponse(admin.Person),
		CreatedAt:      admin.CreatedAt,
		UpdatedAt:      admin.UpdatedAt,
	}
}

func AdminsToResponses(admins []entity.Admin) []dto.AdminResponse {
	responses := make([]dto.AdminResponse, len(admins))
	for i := range admins {
		responses[i] = *AdminToResponse(&admins[i])
	}
	return responses
}
