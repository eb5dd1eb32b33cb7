package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management/config"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/service"
	"hospital-management/internal/testutil"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/apperror"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code apperror.Code
		want int
	}{
		{apperror.CodeBadRequest, http.StatusBadRequest},
		{apperror.CodeInvalidArgument, http.StatusBadRequest},
		{apperror.CodeNotFound, http.StatusNotFound},
		{apperror.CodeDuplicateRecord, http.StatusConflict},
		{apperror.CodeConflict, http.StatusConflict},
		{apperror.CodeResourceExhausted, http.StatusConflict},
		{apperror.CodeIdentityCreation, http.StatusUnprocessableEntity},
		{apperror.CodeIdentityRole, http.StatusUnprocessableEntity},
		{apperror.CodeUnauthorized, http.StatusUnauthorized},
		{apperror.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.code))
		})
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: connection refused"), "Failed to get admin")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "Failed to get admin")
}

func newAdminRouter(t *testing.T) (*mux.Router, *testutil.Store) {
	t.Helper()

	log := testutil.NewLogger()
	cfg := config.IdentityConfig{
		EmailDomain:    "hospital.com",
		AdminRole:      "Admin",
		DoctorRole:     "Doctor",
		PatientRole:    "Patient",
		PasswordPolicy: config.DefaultPasswordPolicy(),
	}
	store := testutil.NewStore().SeedRoles(cfg.Roles()...)

	identity := service.NewIdentityProvider(log, testutil.NewIdentityUserRepository(store), testutil.NewRoleRepository(store), cfg.PasswordPolicy)
	accounts := service.NewAccountService(log, testutil.NewAccountRepository(store), identity, testutil.NewTokenStore(), metrics.New(prometheus.NewRegistry()))
	admins := usecase.NewAdminUsecase(
		testutil.NewUnitOfWork(store), log, validator.NewValidator(), cfg,
		testutil.NewAdminRepository(store),
		service.NewEmailGenerator(log, identity),
		accounts,
		service.NewAuditService(log, testutil.NewAuditLogRepository(store)),
	)

	h := NewAdminHandler(admins)
	router := mux.NewRouter()
	router.HandleFunc("/admins", h.CreateAdmin).Methods(http.MethodPost)
	router.HandleFunc("/admins/{id}", h.GetAdmin).Methods(http.MethodGet)
	return router, store
}

func doJSON(router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		json.NewEncoder(&buf).Encode(body)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	var resp response.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func adminBody(email, password string) map[string]string {
	return map[string]string{
		"first_name":    "John",
		"last_name":     "Doe",
		"gender":        "male",
		"address":       "12 Harbor Road",
		"phone_number":  "5551234567",
		"email":         email,
		"date_of_birth": "1984-06-15",
		"password":      password,
	}
}

func TestAdminHandler(t *testing.T) {
	router, store := newAdminRouter(t)

	rec, resp := doJSON(router, http.MethodPost, "/admins", adminBody("john@mail.com", "Secret1!"))
	require.Equal(t, http.StatusCreated, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "john.doe@hospital.com", data["username"])
	assert.Equal(t, "John Doe", data["full_name"])

	rec, _ = doJSON(router, http.MethodGet, "/admins/"+data["id"].(string), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(router, http.MethodPost, "/admins", adminBody("JOHN@mail.com", "Secret1!"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(apperror.CodeDuplicateRecord), resp.Error)

	rec, resp = doJSON(router, http.MethodPost, "/admins", adminBody("jane@mail.com", "weak"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp.Message, "Passwords must be at least 6 characters.")
	assert.Len(t, store.Admins, 1)

	rec, _ = doJSON(router, http.MethodPost, "/admins", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(router, http.MethodGet, "/admins/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(router, http.MethodGet, "/admins/6f1c2a8e-5b0e-4f7e-9d7a-2c1f4b0e8a11", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
