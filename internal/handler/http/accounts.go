package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/service"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// register handles POST /api/accounts/register/. Open to anonymous callers;
// the created account is always a regular active user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// token handles POST /api/accounts/token/: verifies credentials and returns
// a fresh access/refresh pair.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	authenticatedUser, err := h.services.AuthService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.WriteJSON(w, models.ErrorResponse{Detail: service.ErrInvalidCredentials.Error()}, http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	pair, err := h.services.TokenService.IssuePair(ctx, authenticatedUser)
	if err != nil {
		log.Err(err).Msg("token pair issuance failed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInternalError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", authenticatedUser.UserID).Msg("token pair issued")
	utils.WriteJSON(w, pair, http.StatusOK)
}

// refreshToken handles POST /api/accounts/token/refresh/: exchanges a live
// refresh token for a new access token. The refresh token is not rotated.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	if request.Refresh == "" {
		fields := models.FieldErrors{}
		fields.Add("refresh", "this field is required")
		utils.WriteJSON(w, fields, http.StatusBadRequest)
		return
	}

	accessToken, err := h.services.TokenService.Refresh(ctx, request.Refresh)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"access": accessToken.String()}, http.StatusOK)
}

// logout handles POST /api/accounts/logout/: durably revokes the presented
// refresh token. Outstanding access tokens keep working until they expire.
//
// A missing, malformed or expired refresh token is the caller's mistake and
// answers 400; success answers 205 Reset Content with an empty body.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidJSON}, http.StatusBadRequest)
		return
	}

	if request.RefreshToken == "" {
		fields := models.FieldErrors{}
		fields.Add("refresh_token", "this field is required")
		utils.WriteJSON(w, fields, http.StatusBadRequest)
		return
	}

	if err := h.services.TokenService.Revoke(ctx, request.RefreshToken); err != nil {
		switch {
		case errors.Is(err, service.ErrTokenMalformed), errors.Is(err, service.ErrTokenExpired):
			utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidToken}, http.StatusBadRequest)
		default:
			writeServiceError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusResetContent)
}
