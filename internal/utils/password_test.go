package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4) // minimal cost keeps the test fast

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("s3cret", 0)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$12$"), "cost 0 should select the default work factor")
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	second, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 100), 4)
	require.Error(t, err)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestCheckPassword_NotAHash(t *testing.T) {
	assert.False(t, CheckPassword("plaintext", "plaintext"))
}
