package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/testutil"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "middleware-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newJWTService()
	tokens := testutil.NewTokenStore()
	m := NewAuthMiddleware(testutil.NewLogger(), jwtService, tokens)

	userID := uuid.New()
	access, accessID, err := jwtService.GenerateAccessToken(userID, "john.doe@hospital.com", "Admin")
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(userID, "john.doe@hospital.com", "Admin")
	require.NoError(t, err)
	require.NoError(t, tokens.Save(context.Background(), string(jwt.AccessToken), userID, accessID, time.Minute))

	var seen context.Context
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(""))
	assert.Equal(t, http.StatusUnauthorized, serve("Token "+access))
	assert.Equal(t, http.StatusUnauthorized, serve("Bearer garbage"))
	assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+refresh))
	assert.Nil(t, seen)

	require.Equal(t, http.StatusNoContent, serve("Bearer "+access))
	gotID, ok := GetUserIDFromContext(seen)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	role, _ := GetRoleFromContext(seen)
	assert.Equal(t, "Admin", role)
	tokenID, _ := GetTokenIDFromContext(seen)
	assert.Equal(t, accessID, tokenID)
	claims, ok := jwt.ClaimsFromContext(seen)
	require.True(t, ok)
	assert.Equal(t, userID, claims.UserID)

	require.NoError(t, tokens.Revoke(context.Background(), string(jwt.AccessToken), userID, accessID))
	assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+access))
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole("Admin", "Doctor")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{"no role", context.Background(), http.StatusUnauthorized},
		{"allowed", context.WithValue(context.Background(), RoleKey, "Doctor"), http.StatusNoContent},
		{"forbidden", context.WithValue(context.Background(), RoleKey, "Patient"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRoleOrOwner(t *testing.T) {
	self, other := uuid.New(), uuid.New()

	router := mux.NewRouter()
	router.Handle("/patients/{id}", RequireRoleOrOwner("Patient", "id", "Admin", "Doctor")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	caller := func(role string, userID uuid.UUID) context.Context {
		ctx := context.WithValue(context.Background(), RoleKey, role)
		return context.WithValue(ctx, UserIDKey, userID)
	}

	tests := []struct {
		name string
		ctx  context.Context
		path string
		want int
	}{
		{"no role", context.Background(), "/patients/" + self.String(), http.StatusUnauthorized},
		{"staff reads anyone", caller("Doctor", self), "/patients/" + other.String(), http.StatusNoContent},
		{"patient reads self", caller("Patient", self), "/patients/" + self.String(), http.StatusNoContent},
		{"patient reads self uppercase", caller("Patient", self), "/patients/" + strings.ToUpper(self.String()), http.StatusNoContent},
		{"patient reads other", caller("Patient", self), "/patients/" + other.String(), http.StatusForbidden},
		{"patient bad id", caller("Patient", self), "/patients/not-a-uuid", http.StatusForbidden},
		{"other role with own id", caller("Nurse", self), "/patients/" + self.String(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil).WithContext(tt.ctx))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := mux.NewRouter()
	router.HandleFunc("/doctors/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	router.Use(NewMetricsMiddleware(m).Handle)

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/"+uuid.NewString(), nil))
	}

	assert.Equal(t, float64(2), promtest.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/doctors/{id}", "404")))
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}
