package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase) *SpecializationHandler {
	return &SpecializationHandler{
		specializationUsecase: specializationUsecase,
	}
}

func (h *SpecializationHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	specialization, err := h.specializationUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create specialization")
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created successfully", specialization)
}

func (h *SpecializationHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	specialization, err := h.specializationUsecase.GetByID(r.Context(), specializationID)
	if err != nil {
		writeError(w, err, "Failed to get specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization retrieved successfully", specialization)
}

func (h *SpecializationHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.specializationUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

func (h *SpecializationHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	specialization, err := h.specializationUsecase.Update(r.Context(), specializationID, &req)
	if err != nil {
		writeError(w, err, "Failed to update specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated successfully", specialization)
}

func (h *SpecializationHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.specializationUsecase.Delete(r.Context(), specializationID); err != nil {
		writeError(w, err, "Failed to delete specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted successfully", nil)
}
