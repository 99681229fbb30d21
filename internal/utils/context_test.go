package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("some-key")
	assert.Equal(t, "some-key", key.String())
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	user := models.User{UserID: 42, Email: "a@x.com", IsStaff: true}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, user)

	got, ok := GetIdentityFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-a-user")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.User{UserID: 1})

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
