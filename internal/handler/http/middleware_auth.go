package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// authorize returns an HTTP middleware enforcing the minimum role a routing
// entry requires. It is the only place where authentication and permission
// checks happen; handlers behind it can assume the caller satisfies the
// declared role.
//
// Resolution rules:
//   - No "Authorization" header → the caller is [models.RoleAnonymous].
//   - A header that is present but unparsable, carries an invalid or expired
//     access token, or resolves to a missing or inactive account → HTTP 401,
//     even when the route itself allows anonymous access. Presented
//     credentials must be valid credentials.
//   - A valid token → the account is loaded from storage, so deactivation
//     takes effect immediately, without waiting for the token to expire.
//
// A resolved identity that does not meet the minimum role gets HTTP 403;
// an anonymous caller on a protected route gets HTTP 401. On success the
// identity is stored in the request context under [utils.IdentityCtxKey].
func (h *Handler) authorize(minimum models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if models.RoleAnonymous.Meets(minimum) {
					next.ServeHTTP(w, r)
					return
				}
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailNotAuthenticated}, http.StatusUnauthorized)
				return
			}

			tokenString, err := getTokenFromAuthHeader(authHeader)
			if err != nil {
				log.Warn().Err(err).Msg("malformed authorization header")
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidToken}, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			token, err := h.services.TokenService.ValidateAccess(ctx, tokenString)
			if err != nil {
				log.Warn().Err(err).Msg("access token rejected")
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailInvalidToken}, http.StatusUnauthorized)
				return
			}

			identity, err := h.services.UserService.GetByID(ctx, token.UserID)
			if err != nil {
				if errors.Is(err, store.ErrNoUserWasFound) {
					log.Warn().Int64("id", token.UserID).Msg("token subject no longer exists")
					utils.WriteJSON(w, models.ErrorResponse{Detail: detailInactiveOrDeleted}, http.StatusUnauthorized)
					return
				}
				log.Err(err).Int64("id", token.UserID).Msg("identity lookup failed")
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailInternalError}, http.StatusInternalServerError)
				return
			}
			if !identity.IsActive {
				log.Warn().Int64("id", identity.UserID).Msg("token subject is inactive")
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailInactiveOrDeleted}, http.StatusUnauthorized)
				return
			}

			if !identity.Role().Meets(minimum) {
				log.Warn().Int64("id", identity.UserID).Stringer("role", identity.Role()).Stringer("required", minimum).Msg("insufficient role")
				utils.WriteJSON(w, models.ErrorResponse{Detail: detailPermissionDenied}, http.StatusForbidden)
				return
			}

			ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
