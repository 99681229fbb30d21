package service

import (
	"errors"

	"github.com/MKhiriev/go-cbt-forms/models"
)

var (
	// ErrInvalidCredentials is the single failure returned for every way a
	// login attempt can be wrong: unknown email, inactive account, bad
	// password. Collapsing them prevents account enumeration.
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")

	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenRevoked is returned when a refresh token's jti is present in
	// the blacklist.
	ErrTokenRevoked = errors.New("token is blacklisted")

	// ErrTokenMalformed is returned when a token cannot be accepted for any
	// structural reason: bad signature, wrong issuer, wrong token type,
	// or not a JWT at all.
	ErrTokenMalformed = errors.New("token is invalid")

	// ErrVersionIsNotSpecified is returned at construction time when the
	// application version is missing from configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries per-field validation messages for a rejected
// request. Handlers serialize Fields directly as the 400 response body.
type ValidationError struct {
	Fields models.FieldErrors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid data provided"
}

// newValidationError wraps the accumulated field errors, or returns nil when
// none were recorded.
func newValidationError(fields models.FieldErrors) error {
	if fields.Empty() {
		return nil
	}
	return &ValidationError{Fields: fields}
}
