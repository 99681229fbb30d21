package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/service"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenExpired:       http.StatusUnauthorized,
	service.ErrTokenRevoked:       http.StatusUnauthorized,
	service.ErrTokenMalformed:     http.StatusUnauthorized,

	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrQuestionNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromStatus picks the response body wording for a mapped status.
func detailFromStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return detailInvalidToken
	case http.StatusForbidden:
		return detailPermissionDenied
	case http.StatusNotFound:
		return detailNotFound
	default:
		return detailInternalError
	}
}

// writeServiceError converts a service or storage error into the wire shape
// the original API used:
//
//   - [*service.ValidationError] → 400 with the per-field error map as body.
//   - [store.ErrEmailAlreadyExists] → 400 with an "email" field error (a
//     duplicate email is a validation failure, not a conflict, on this API).
//   - Everything else → [errorStatusMap] status with a {"detail": ...} body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, validationErr.Fields, http.StatusBadRequest)
		return
	}

	if errors.Is(err, store.ErrEmailAlreadyExists) {
		fields := models.FieldErrors{}
		fields.Add("email", "user with this email already exists")
		utils.WriteJSON(w, fields, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	}
	utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromStatus(status)}, status)
}
