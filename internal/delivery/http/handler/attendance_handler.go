package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
)

type AttendanceHandler struct {
	attendanceUsecase usecase.AttendanceUsecase
	patientRole       string
}

// NewAttendanceHandler builds the handler. Callers with patientRole may only
// read attendances recorded for themselves.
func NewAttendanceHandler(attendanceUsecase usecase.AttendanceUsecase, patientRole string) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUsecase: attendanceUsecase,
		patientRole:       patientRole,
	}
}

// CreateAttendance records a patient visit
// @Summary Create attendance
// @Tags Attendances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AttendanceRequest true "Attendance Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendances [post]
func (h *AttendanceHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.AttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	attendance, err := h.attendanceUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create attendance")
		return
	}

	response.Success(w, http.StatusCreated, "Attendance created successfully", attendance)
}

func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	attendance, err := h.attendanceUsecase.GetByID(r.Context(), attendanceID)
	if err != nil {
		writeError(w, err, "Failed to get attendance")
		return
	}

	if role, _ := middleware.GetRoleFromContext(r.Context()); role == h.patientRole {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok || attendance.PatientID != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	response.Success(w, http.StatusOK, "Attendance retrieved successfully", attendance)
}

func (h *AttendanceHandler) GetAttendancesByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	attendances, err := h.attendanceUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get attendances")
		return
	}

	response.Success(w, http.StatusOK, "Attendances retrieved successfully", attendances)
}

func (h *AttendanceHandler) GetAttendancesByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "doctorId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	attendances, err := h.attendanceUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get attendances")
		return
	}

	response.Success(w, http.StatusOK, "Attendances retrieved successfully", attendances)
}

func (h *AttendanceHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	var req dto.AttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	attendance, err := h.attendanceUsecase.Update(r.Context(), attendanceID, &req)
	if err != nil {
		writeError(w, err, "Failed to update attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance updated successfully", attendance)
}

func (h *AttendanceHandler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	if err := h.attendanceUsecase.Delete(r.Context(), attendanceID); err != nil {
		writeError(w, err, "Failed to delete attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance deleted successfully", nil)
}
