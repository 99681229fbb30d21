package service

import (
	"context"

	"github.com/MKhiriev/go-cbt-forms/models"
)

// AuthService handles self-service registration and credential verification.
// Token issuance is a separate concern, see [TokenService].
type AuthService interface {
	// Register creates a new non-admin, active account from the request.
	// Returns [*ValidationError] on missing fields and
	// [store.ErrEmailAlreadyExists] (wrapped) on a duplicate email.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Authenticate verifies an email/password pair and returns the matching
	// account. A missing account, an inactive account and a wrong password
	// all fail with the same [ErrInvalidCredentials]: the caller learns
	// nothing about which check failed.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// TokenService owns the JWT lifecycle: issuance, refresh, revocation, and
// access-token validation.
type TokenService interface {
	// IssuePair mints an access/refresh token pair for the user.
	IssuePair(ctx context.Context, user models.User) (models.TokenPair, error)

	// Refresh validates the refresh token and mints a fresh access token.
	// The refresh token itself is not rotated and stays usable until it
	// expires or is revoked.
	// Returns [ErrTokenExpired], [ErrTokenRevoked] or [ErrTokenMalformed].
	Refresh(ctx context.Context, refreshToken string) (models.Token, error)

	// Revoke durably blacklists the refresh token. Revoking an already
	// revoked token succeeds. Returns [ErrTokenExpired] or
	// [ErrTokenMalformed] when the token cannot be accepted.
	Revoke(ctx context.Context, refreshToken string) error

	// ValidateAccess verifies an access token's signature, expiry, issuer
	// and declared type, returning the parsed token. Access tokens are
	// stateless: the blacklist is never consulted here.
	// Returns [ErrTokenExpired] or [ErrTokenMalformed].
	ValidateAccess(ctx context.Context, accessToken string) (models.Token, error)
}

// UserService handles user account management beyond self-registration.
type UserService interface {
	// Create persists a new account from an admin-supplied request; unlike
	// [AuthService.Register] it may set the staff and superuser flags.
	Create(ctx context.Context, request models.UserCreateRequest) (models.User, error)

	// GetByID returns a single account, or [store.ErrNoUserWasFound].
	GetByID(ctx context.Context, userID int64) (models.User, error)

	// Update applies a partial update and returns the updated account.
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)

	// Delete permanently removes the account and its questions.
	Delete(ctx context.Context, userID int64) error

	// List returns every account ordered by ID.
	List(ctx context.Context) ([]models.User, error)
}

// QuestionService handles submitted question forms.
type QuestionService interface {
	// Create persists a new question owned by the user named in the
	// request. Returns [*ValidationError] on bad input, including a
	// reference to a user that does not exist.
	Create(ctx context.Context, request models.QuestionCreateRequest) (models.Question, error)

	// List returns every question, oldest first.
	List(ctx context.Context) ([]models.Question, error)
}

// AppInfoService exposes application-level metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
