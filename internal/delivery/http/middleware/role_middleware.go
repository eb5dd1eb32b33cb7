package middleware

import (
	"net/http"

	"hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !hasRole(role, allowedRoles) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoleOrOwner works like RequireRole and also admits ownerRole when
// the path variable param holds the caller's own user ID.
func RequireRoleOrOwner(ownerRole, param string, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if hasRole(role, allowedRoles) {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := GetUserIDFromContext(r.Context())
			pathID, err := uuid.Parse(mux.Vars(r)[param])
			if role != ownerRole || !ok || err != nil || pathID != userID {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(role string, allowedRoles []string) bool {
	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return true
		}
	}
	return false
}
