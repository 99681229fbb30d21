package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cbt-forms/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns the stored record with
	// server-assigned fields populated. Duplicate emails surface as
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account whose email exactly matches the
	// given value, or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID, or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies the non-nil fields of update to a single account
	// and returns the updated record. Missing record surfaces as
	// [ErrNoUserWasFound]; an email collision as [ErrEmailAlreadyExists].
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser permanently removes the account (and, via the schema's
	// cascade, its questions). Missing record surfaces as [ErrNoUserWasFound].
	DeleteUser(ctx context.Context, userID int64) error

	// ListUsers returns every account ordered by ID ascending.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// QuestionRepository is the data-access contract for question forms.
type QuestionRepository interface {
	// CreateQuestion persists a new question and returns the stored record
	// with server-assigned fields populated. A reference to a missing user
	// surfaces as [ErrNoUserWasFound].
	CreateQuestion(ctx context.Context, question models.Question) (models.Question, error)

	// ListQuestions returns every question ordered by creation time
	// ascending.
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

// TokenBlacklistRepository is the data-access contract for revoked refresh
// tokens. Entries are keyed by the token's jti claim.
type TokenBlacklistRepository interface {
	// Add records the token as revoked. The insert must be durable before
	// Add returns and idempotent: adding an already-present jti succeeds.
	Add(ctx context.Context, jti string, userID int64, expiresAt time.Time) error

	// Contains reports whether the jti has been revoked.
	Contains(ctx context.Context, jti string) (bool, error)

	// PurgeExpired removes entries whose natural expiry has passed and
	// returns the number of rows deleted. Expired tokens are rejected by
	// time-based validation, so keeping their blacklist rows is pointless.
	PurgeExpired(ctx context.Context) (int64, error)
}
