package handler

import (
	"net/http"

	"hospital-management/pkg/apperror"
	"hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// statusFor maps an application error code to the HTTP status returned to
// the client.
func statusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeBadRequest, apperror.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeDuplicateRecord, apperror.CodeConflict, apperror.CodeResourceExhausted:
		return http.StatusConflict
	case apperror.CodeIdentityCreation, apperror.CodeIdentityRole:
		return http.StatusUnprocessableEntity
	case apperror.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err using its code. Errors without a code are reported
// with fallback so internal details do not reach the client.
func writeError(w http.ResponseWriter, err error, fallback string) {
	code := apperror.CodeOf(err)
	if code == apperror.CodeInternal {
		response.InternalServerError(w, fallback)
		return
	}
	response.Error(w, statusFor(code), err.Error(), code)
}

func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	return id, err == nil
}
