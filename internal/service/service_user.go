package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// userService is the concrete implementation of [UserService]. It covers the
// account management surface: admin-driven creation, lookup, partial update,
// permanent deletion and listing.
type userService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing new passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given
// UserRepository.
func NewUserService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = utils.DefaultBcryptCost
	}
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Create persists a new account from an admin-supplied request. Unlike
// self-service registration the staff and superuser flags are honored.
// The created account is always active.
//
// Returns [*ValidationError] on missing fields and a wrapped
// [store.ErrEmailAlreadyExists] on a duplicate email.
func (s *userService) Create(ctx context.Context, request models.UserCreateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUserCreate(request); err != nil {
		log.Error().Str("email", request.Email).Msg("invalid user creation data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		IsStaff:      request.IsStaff,
		IsSuperuser:  request.IsSuperuser,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetByID returns a single account or a wrapped [store.ErrNoUserWasFound].
func (s *userService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// Update applies the non-nil fields of update. A provided password is
// bcrypt-hashed here so the repository only ever sees derived values.
//
// Returns [*ValidationError] when update carries no fields or a blank email,
// and wrapped storage errors otherwise.
func (s *userService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUserUpdate(update); err != nil {
		log.Error().Int64("id", update.UserID).Msg("invalid user update data provided")
		return models.User{}, err
	}

	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &passwordHash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Delete permanently removes the account; the owner's questions go with it
// via the schema's cascade. Returns a wrapped [store.ErrNoUserWasFound] when
// there is nothing to delete.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Int64("id", userID).Msg("user deleted")
	return nil
}

// List returns every account ordered by ID ascending.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// validateUserCreate mirrors registration validation for the admin creation
// endpoint.
func validateUserCreate(request models.UserCreateRequest) error {
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

// validateUserUpdate rejects updates that carry no fields at all and updates
// that would blank out required values.
func validateUserUpdate(update models.UserUpdate) error {
	fields := models.FieldErrors{}

	if update.Email == nil && update.Password == nil && update.FirstName == nil && update.LastName == nil &&
		update.IsStaff == nil && update.IsSuperuser == nil && update.IsActive == nil {
		fields.Add("non_field_errors", "no fields to update")
		return newValidationError(fields)
	}

	if update.Email != nil {
		validateEmailField(fields, *update.Email)
	}
	if update.Password != nil && *update.Password == "" {
		fields.Add("password", "this field may not be blank")
	}
	if update.FirstName != nil && *update.FirstName == "" {
		fields.Add("first_name", "this field may not be blank")
	}
	if update.LastName != nil && *update.LastName == "" {
		fields.Add("last_name", "this field may not be blank")
	}

	return newValidationError(fields)
}
