package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// authService is the concrete implementation of [AuthService].
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing new passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = utils.DefaultBcryptCost
	}
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account from a self-service registration
// request.
//
// All four fields are required. The password is bcrypt-hashed before it
// leaves this function; the created account is always active and never
// staff or superuser, regardless of the request body.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [*ValidationError] listing every missing field.
//   - A wrapped [store.ErrEmailAlreadyExists] if the email is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(request); err != nil {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies an email/password pair.
//
// Lookup failure, an inactive account and a password mismatch all return the
// same [ErrInvalidCredentials] so a caller cannot distinguish "wrong
// password" from "no such user". The bcrypt comparison is skipped only when
// there is no stored hash to compare against.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("email", email).Msg("user search by email failed")
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Warn().Int64("id", foundUser.UserID).Msg("login attempt on inactive account")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// validateRegistration checks the required fields of a registration request
// and returns a [*ValidationError] naming each violation.
func validateRegistration(request models.RegisterRequest) error {
	fields := models.FieldErrors{}

	validateEmailField(fields, request.Email)
	if request.Password == "" {
		fields.Add("password", "this field is required")
	}
	if request.FirstName == "" {
		fields.Add("first_name", "this field is required")
	}
	if request.LastName == "" {
		fields.Add("last_name", "this field is required")
	}

	return newValidationError(fields)
}

// validateEmailField records errors for a required email field. The format
// check is deliberately shallow: uniqueness and deliverability are not
// validation concerns.
func validateEmailField(fields models.FieldErrors, email string) {
	if email == "" {
		fields.Add("email", "this field is required")
		return
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		fields.Add("email", "enter a valid email address")
	}
}
