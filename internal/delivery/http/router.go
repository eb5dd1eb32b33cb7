package http

import (
	"net/http"

	"hospital-management/config"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router                *mux.Router
	roles                 config.IdentityConfig
	gatherer              prometheus.Gatherer
	authHandler           *handler.AuthHandler
	adminHandler          *handler.AdminHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	specializationHandler *handler.SpecializationHandler
	attendanceHandler     *handler.AttendanceHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	metricsMiddleware     *middleware.MetricsMiddleware
}

func NewRouter(
	roles config.IdentityConfig,
	gatherer prometheus.Gatherer,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	specializationHandler *handler.SpecializationHandler,
	attendanceHandler *handler.AttendanceHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		roles:                 roles,
		gatherer:              gatherer,
		authHandler:           authHandler,
		adminHandler:          adminHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		specializationHandler: specializationHandler,
		attendanceHandler:     attendanceHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		metricsMiddleware:     metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	adminOnly := []string{r.roles.AdminRole}
	staff := []string{r.roles.AdminRole, r.roles.DoctorRole}
	staffOrPatient := []string{r.roles.AdminRole, r.roles.DoctorRole, r.roles.PatientRole}

	// Admins
	api.Handle("/admins", r.protect(r.adminHandler.CreateAdmin, adminOnly...)).Methods(http.MethodPost)
	api.Handle("/admins", r.protect(r.adminHandler.GetAllAdmins, adminOnly...)).Methods(http.MethodGet)
	api.Handle("/admins/{id}", r.protect(r.adminHandler.GetAdmin, adminOnly...)).Methods(http.MethodGet)
	api.Handle("/admins/{id}", r.protect(r.adminHandler.UpdateAdmin, adminOnly...)).Methods(http.MethodPut)
	api.Handle("/admins/{id}", r.protect(r.adminHandler.DeleteAdmin, adminOnly...)).Methods(http.MethodDelete)

	// Doctors
	api.Handle("/doctors", r.protect(r.doctorHandler.CreateDoctor, adminOnly...)).Methods(http.MethodPost)
	api.Handle("/doctors", r.protect(r.doctorHandler.GetAllDoctors)).Methods(http.MethodGet)
	api.Handle("/doctors/{id}", r.protect(r.doctorHandler.GetDoctor)).Methods(http.MethodGet)
	api.Handle("/doctors/{id}", r.protect(r.doctorHandler.UpdateDoctor, adminOnly...)).Methods(http.MethodPut)
	api.Handle("/doctors/{id}", r.protect(r.doctorHandler.DeleteDoctor, adminOnly...)).Methods(http.MethodDelete)
	api.Handle("/doctors/{doctorId}/attendances", r.protect(r.attendanceHandler.GetAttendancesByDoctor, staff...)).Methods(http.MethodGet)

	// Patients
	api.Handle("/patients", r.protect(r.patientHandler.CreatePatient, adminOnly...)).Methods(http.MethodPost)
	api.Handle("/patients", r.protect(r.patientHandler.GetAllPatients, staff...)).Methods(http.MethodGet)
	api.Handle("/patients/{id}", r.protectOwner(r.patientHandler.GetPatient, "id", staff...)).Methods(http.MethodGet)
	api.Handle("/patients/{id}", r.protect(r.patientHandler.UpdatePatient, staff...)).Methods(http.MethodPut)
	api.Handle("/patients/{id}", r.protect(r.patientHandler.DeletePatient, adminOnly...)).Methods(http.MethodDelete)
	api.Handle("/patients/{patientId}/attendances", r.protectOwner(r.attendanceHandler.GetAttendancesByPatient, "patientId", staff...)).Methods(http.MethodGet)

	// Specializations
	api.Handle("/specializations", r.protect(r.specializationHandler.CreateSpecialization, adminOnly...)).Methods(http.MethodPost)
	api.Handle("/specializations", r.protect(r.specializationHandler.GetAllSpecializations)).Methods(http.MethodGet)
	api.Handle("/specializations/{id}", r.protect(r.specializationHandler.GetSpecialization)).Methods(http.MethodGet)
	api.Handle("/specializations/{id}", r.protect(r.specializationHandler.UpdateSpecialization, adminOnly...)).Methods(http.MethodPut)
	api.Handle("/specializations/{id}", r.protect(r.specializationHandler.DeleteSpecialization, adminOnly...)).Methods(http.MethodDelete)

	// Attendances
	api.Handle("/attendances", r.protect(r.attendanceHandler.CreateAttendance, staff...)).Methods(http.MethodPost)
	api.Handle("/attendances/{id}", r.protect(r.attendanceHandler.GetAttendance, staffOrPatient...)).Methods(http.MethodGet)
	api.Handle("/attendances/{id}", r.protect(r.attendanceHandler.UpdateAttendance, staff...)).Methods(http.MethodPut)
	api.Handle("/attendances/{id}", r.protect(r.attendanceHandler.DeleteAttendance, staff...)).Methods(http.MethodDelete)

	// Audit logs
	api.Handle("/audit-logs", r.protect(r.auditLogHandler.GetAllAuditLogs, adminOnly...)).Methods(http.MethodGet)
	api.Handle("/audit-logs/{id}", r.protect(r.auditLogHandler.GetAuditLog, adminOnly...)).Methods(http.MethodGet)

	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// protect requires a valid access token and, when roles are given, one of
// those roles.
func (r *Router) protect(h http.HandlerFunc, roles ...string) http.Handler {
	var next http.Handler = h
	if len(roles) > 0 {
		next = middleware.RequireRole(roles...)(next)
	}
	return r.authMiddleware.Authenticate(next)
}

// protectOwner admits the given roles, plus a patient whose own ID is the
// path variable param.
func (r *Router) protectOwner(h http.HandlerFunc, param string, roles ...string) http.Handler {
	return r.authMiddleware.Authenticate(middleware.RequireRoleOrOwner(r.roles.PatientRole, param, roles...)(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
