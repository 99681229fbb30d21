// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cbt-forms/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name, is_staff, is_superuser, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, email, password_hash, first_name, last_name, is_staff, is_superuser, is_active, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, is_staff, is_superuser, is_active, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, first_name, last_name, is_staff, is_superuser, is_active, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, password_hash, first_name, last_name, is_staff, is_superuser, is_active, created_at
    FROM users
    ORDER BY user_id;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createQuestion = `INSERT INTO questions (question_text, user_id)
    VALUES ($1, $2)
    RETURNING id, question_text, user_id, created_at, updated_at;`

	listQuestions = `SELECT id, question_text, user_id, created_at, updated_at
    FROM questions
    ORDER BY created_at;`

	addBlacklistEntry = `INSERT INTO token_blacklist (jti, user_id, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (jti) DO NOTHING;`

	containsBlacklistEntry = `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE jti = $1);`

	purgeExpiredBlacklist = `DELETE FROM token_blacklist
    WHERE expires_at < NOW();`
)

// buildUserUpdateQuery dynamically builds the partial UPDATE for a user
// record: only the non-nil fields of update produce SET clauses. The query
// returns all user columns so the caller receives the canonical updated row.
//
// Returns [ErrBuildingSQLQuery] (wrapped by the caller) semantics via a plain
// error when update carries no fields to modify.
func buildUserUpdateQuery(update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING user_id, email, password_hash, first_name, last_name, is_staff, is_superuser, is_active, created_at")

	hasChanges := false
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		hasChanges = true
	}
	if update.Password != nil {
		// the value is already hashed by the time it reaches the store
		builder = builder.Set("password_hash", *update.Password)
		hasChanges = true
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
		hasChanges = true
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
		hasChanges = true
	}
	if update.IsStaff != nil {
		builder = builder.Set("is_staff", *update.IsStaff)
		hasChanges = true
	}
	if update.IsSuperuser != nil {
		builder = builder.Set("is_superuser", *update.IsSuperuser)
		hasChanges = true
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
		hasChanges = true
	}

	if !hasChanges {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
