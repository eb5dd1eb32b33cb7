package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// AttendanceToResponse converts an Attendance entity to AttendanceResponse DTO.
// patient and doctor are optional and only fill in the display names.
func AttendanceToResponse(attendance *entity.Attendance, patient *entity.Patient, doctor *entity.Doctor) *dto.AttendanceResponse {
	if attendance == nil {
		return nil
	}

	response := &dto.AttendanceResponse{
		ID:        attendance.ID,
		PatientID: attendance.PatientID,
		DoctorID:  attendance.DoctorID,
		DateTime:  attendance.DateTime,
		Diagnosis: attendance.Diagnosis,
		Remarks:   attendance.Remarks,
		Therapy:   attendance.Therapy,
		CreatedAt: attendance.CreatedAt,
		UpdatedAt: attendance.UpdatedAt,
	}
	if patient != nil {
		response.PatientName = patient.FullName()
	}
	if doctor != nil {
		response.DoctorName = doctor.FullName()
	}
	return response
}

// AttendancesToSummaries converts a slice of Attendance entities to slice of AttendanceSummary DTOs
func AttendancesToSummaries(attendances []entity.Attendance) []dto.AttendanceSummary {
	summaries := make([]dto.AttendanceSummary, len(attendances))
	for i, a := range attendances {
		summaries[i] = dto.AttendanceSummary{
			ID:        a.ID,
			PatientID: a.PatientID,
			DoctorID:  a.DoctorID,
			DateTime:  a.DateTime,
			Diagnosis: a.Diagnosis,
		}
	}
	return summaries
}
