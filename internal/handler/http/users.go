package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/go-chi/chi/v5"
)

// userIDFromURL parses the {id} route parameter. A non-numeric id answers
// 404: such a path simply names no resource.
func userIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailNotFound}, http.StatusNotFound)
		return 0, false
	}
	return userID, true
}

// createUser handles POST /api/accounts/users/ (admin only). Unlike
// self-service registration the request may set the staff/superuser flags.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", createdUser.UserID).Bool("is_staff", createdUser.IsStaff).Msg("user created")
	utils.WriteJSON(w, createdUser, http.StatusCreated)
}

// listUsers handles GET /api/accounts/users/ (admin only).
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUser handles GET /api/accounts/users/{id}. Any authenticated user may
// look up any account.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromURL(w, r)
	if !ok {
		return
	}

	foundUser, err := h.services.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// updateUser handles PUT /api/accounts/users/{id}. The update is partial:
// only fields present in the body are modified.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromURL(w, r)
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}
	update.UserID = userID

	updatedUser, err := h.services.UserService.Update(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", updatedUser.UserID).Msg("user updated")
	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteUser handles DELETE /api/accounts/users/{id}. Deletion is permanent
// and cascades to the user's questions.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.Delete(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
