package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	admin, err := h.adminUsecase.Create(r.Context(), &req.AdminRequest, req.Password)
	if err != nil {
		writeError(w, err, "Failed to create admin")
		return
	}

	response.Success(w, http.StatusCreated, "Admin created successfully", admin)
}

func (h *AdminHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	admin, err := h.adminUsecase.GetByID(r.Context(), adminID)
	if err != nil {
		writeError(w, err, "Failed to get admin")
		return
	}

	response.Success(w, http.StatusOK, "Admin retrieved successfully", admin)
}

func (h *AdminHandler) GetAllAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get admins")
		return
	}

	response.Success(w, http.StatusOK, "Admins retrieved successfully", admins)
}

func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	var req dto.AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	admin, err := h.adminUsecase.Update(r.Context(), adminID, &req)
	if err != nil {
		writeError(w, err, "Failed to update admin")
		return
	}

	response.Success(w, http.StatusOK, "Admin updated successfully", admin)
}

func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	if err := h.adminUsecase.Delete(r.Context(), adminID); err != nil {
		writeError(w, err, "Failed to delete admin")
		return
	}

	response.Success(w, http.StatusOK, "Admin deleted successfully", nil)
}
