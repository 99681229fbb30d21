// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUserUpdateQuery_SingleField(t *testing.T) {
	email := "new@example.com"
	update := models.UserUpdate{UserID: 42, Email: &email}

	query, args, err := buildUserUpdateQuery(update)
	require.NoError(t, err)

	// args checks: SET value first, WHERE value last
	require.Len(t, args, 2)
	require.Equal(t, email, args[0])
	require.Equal(t, int64(42), args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "update users")
	require.Contains(t, q, "set email")
	require.Contains(t, q, "where user_id")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	// untouched columns must not appear in the SET clause
	assert.NotContains(t, q, "first_name =")
	assert.NotContains(t, q, "is_active =")
}

func Test_buildUserUpdateQuery_AllFields(t *testing.T) {
	email := "new@example.com"
	password := "$2a$12$hash"
	first := "John"
	last := "Doe"
	yes := true
	no := false

	update := models.UserUpdate{
		UserID:      1,
		Email:       &email,
		Password:    &password,
		FirstName:   &first,
		LastName:    &last,
		IsStaff:     &yes,
		IsSuperuser: &no,
		IsActive:    &yes,
	}

	query, args, err := buildUserUpdateQuery(update)
	require.NoError(t, err)

	// 7 SET values + 1 WHERE value
	require.Len(t, args, 8)

	q := strings.ToLower(query)
	cols := []string{
		"email",
		"password_hash",
		"first_name",
		"last_name",
		"is_staff",
		"is_superuser",
		"is_active",
	}
	for _, col := range cols {
		assert.Contains(t, q, col)
	}
}

func Test_buildUserUpdateQuery_NoFields(t *testing.T) {
	_, _, err := buildUserUpdateQuery(models.UserUpdate{UserID: 1})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}
