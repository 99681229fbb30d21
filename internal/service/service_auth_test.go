package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/mock"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// low bcrypt cost keeps the test suite fast
var testAuthConfig = config.Auth{BcryptCost: 4}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUsers, testAuthConfig, logger.Nop()).(*authService)

	return svc, mockUsers
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterRequest{
		Email:     "john@example.com",
		Password:  "secret-password",
		FirstName: "John",
		LastName:  "Doe",
	}

	var persisted models.User
	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.Register(ctx, request)
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, request.Email, registered.Email)

	// registration never grants admin flags and always activates the account
	assert.False(t, persisted.IsStaff)
	assert.False(t, persisted.IsSuperuser)
	assert.True(t, persisted.IsActive)

	// plaintext must not reach the repository
	assert.NotEqual(t, request.Password, persisted.PasswordHash)
	assert.True(t, utils.CheckPassword(persisted.PasswordHash, request.Password))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegisterRequest{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	for _, field := range []string{"email", "password", "first_name", "last_name"} {
		assert.Contains(t, validationErr.Fields, field)
	}
}

func TestAuthService_Register_BadEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	request := models.RegisterRequest{
		Email:     "not-an-email",
		Password:  "secret",
		FirstName: "John",
		LastName:  "Doe",
	}

	_, err := svc.Register(context.Background(), request)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	assert.NotContains(t, validationErr.Fields, "password")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Email:     "taken@example.com",
		Password:  "secret",
		FirstName: "John",
		LastName:  "Doe",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	password := "secret-password"
	hash, err := utils.HashPassword(password, testAuthConfig.BcryptCost)
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: hash, IsActive: true}, nil)

	authenticated, err := svc.Authenticate(ctx, "john@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, int64(1), authenticated.UserID)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	password := "secret-password"
	hash, err := utils.HashPassword(password, testAuthConfig.BcryptCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m *mock.MockUserRepository)
	}{
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: password,
			setup: func(m *mock.MockUserRepository) {
				m.EXPECT().
					FindUserByEmail(gomock.Any(), "ghost@example.com").
					Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name:     "inactive account",
			email:    "john@example.com",
			password: password,
			setup: func(m *mock.MockUserRepository) {
				m.EXPECT().
					FindUserByEmail(gomock.Any(), "john@example.com").
					Return(models.User{UserID: 1, PasswordHash: hash, IsActive: false}, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "john@example.com",
			password: "wrong-password",
			setup: func(m *mock.MockUserRepository) {
				m.EXPECT().
					FindUserByEmail(gomock.Any(), "john@example.com").
					Return(models.User{UserID: 1, PasswordHash: hash, IsActive: true}, nil)
			},
		},
		{
			name:     "empty password",
			email:    "john@example.com",
			password: "",
			setup:    func(m *mock.MockUserRepository) {},
		},
	}

	// every failure mode collapses to the same error: no enumeration signal
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockUsers := newTestAuthSvc(t, ctrl)
			tt.setup(mockUsers)

			_, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Authenticate_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{}, errors.New("db is down"))

	_, err := svc.Authenticate(ctx, "john@example.com", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
