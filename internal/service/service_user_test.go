package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/mock"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers, testAuthConfig, logger.Nop()).(*userService)

	return svc, mockUsers
}

func TestUserService_Create_HonorsAdminFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	request := models.UserCreateRequest{
		Email:     "admin@example.com",
		Password:  "secret",
		FirstName: "Ada",
		LastName:  "Admin",
		IsStaff:   true,
	}

	var persisted models.User
	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		})

	created, err := svc.Create(ctx, request)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.True(t, persisted.IsStaff)
	assert.False(t, persisted.IsSuperuser)
	assert.True(t, persisted.IsActive)
	assert.True(t, utils.CheckPassword(persisted.PasswordHash, request.Password))
}

func TestUserService_Create_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.UserCreateRequest{Email: "a@b.c"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotContains(t, validationErr.Fields, "email")
	assert.Contains(t, validationErr.Fields, "password")
	assert.Contains(t, validationErr.Fields, "first_name")
	assert.Contains(t, validationErr.Fields, "last_name")
}

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(3)).
		Return(models.User{UserID: 3, Email: "john@example.com"}, nil)

	found, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", found.Email)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetByID(ctx, 404)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_Update_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	password := "new-password"
	update := models.UserUpdate{UserID: 3, Password: &password}

	mockUsers.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.UserUpdate) (models.User, error) {
			require.NotNil(t, got.Password)
			assert.NotEqual(t, password, *got.Password)
			assert.True(t, utils.CheckPassword(*got.Password, password))
			return models.User{UserID: 3}, nil
		})

	_, err := svc.Update(ctx, update)
	require.NoError(t, err)
}

func TestUserService_Update_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Update(context.Background(), models.UserUpdate{UserID: 3})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "non_field_errors")
}

func TestUserService_Update_BlankValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	blank := ""
	_, err := svc.Update(context.Background(), models.UserUpdate{
		UserID:    3,
		Email:     &blank,
		FirstName: &blank,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	assert.Contains(t, validationErr.Fields, "first_name")
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().DeleteUser(ctx, int64(3)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 3))

	mockUsers.EXPECT().DeleteUser(ctx, int64(404)).Return(store.ErrNoUserWasFound)
	require.ErrorIs(t, svc.Delete(ctx, 404), store.ErrNoUserWasFound)
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		ListUsers(ctx).
		Return([]models.User{{UserID: 1}, {UserID: 2}}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
