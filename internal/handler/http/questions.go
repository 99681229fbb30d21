package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// createQuestion handles POST /api/forms/questions/. The owning user comes
// from the request body, matching the original API contract.
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.QuestionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	createdQuestion, err := h.services.QuestionService.Create(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", createdQuestion.ID).Int64("user", createdQuestion.UserID).Msg("question created")
	utils.WriteJSON(w, createdQuestion, http.StatusCreated)
}

// listQuestions handles GET /api/forms/questions/ (admin only). Questions
// come back oldest first.
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.QuestionService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}
