package usecase

import (
	"hospital-management/internal/delivery/dto"

	"github.com/google/uuid"
)

func personRequest(first, last, email string) dto.PersonRequest {
	return dto.PersonRequest{
		FirstName:   first,
		LastName:    last,
		Gender:      "male",
		Address:     "12 Harbor Road",
		PhoneNumber: "5551234567",
		Email:       email,
		DateOfBirth: "1984-06-15",
	}
}

func adminRequest(first, last, email string) *dto.AdminRequest {
	return &dto.AdminRequest{PersonRequest: personRequest(first, last, email)}
}

func patientRequest(first, last, email string) *dto.PatientRequest {
	return &dto.PatientRequest{PersonRequest: personRequest(first, last, email), BloodType: "O+"}
}

func doctorRequest(first, last, email string, specializationIDs ...uuid.UUID) *dto.DoctorRequest {
	return &dto.DoctorRequest{PersonRequest: personRequest(first, last, email), SpecializationIDs: specializationIDs}
}

func specializationRequest(name string) *dto.SpecializationRequest {
	return &dto.SpecializationRequest{Name: name, Description: name + " department"}
}
