package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

const DateLayout = "2006-01-02"

// PersonToResponse converts the shared person fields to their DTO.
func PersonToResponse(p entity.Person) dto.PersonResponse {
	return dto.PersonResponse{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		Gender:      string(p.Gender),
		Address:     p.Address,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth.Format(DateLayout),
	}
}
