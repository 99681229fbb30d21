package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data, and permission flags.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Matching is case-sensitive and
	// exact as stored.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// FirstName is part of the user's profile. Required at registration.
	FirstName string `json:"first_name"`

	// LastName is part of the user's profile. Required at registration.
	LastName string `json:"last_name"`

	// IsStaff marks the account as staff. Staff accounts pass admin-tier
	// permission checks.
	IsStaff bool `json:"is_staff"`

	// IsSuperuser marks the account as a superuser. Superusers pass
	// admin-tier permission checks.
	IsSuperuser bool `json:"is_superuser"`

	// IsActive soft-disables the account when false. Inactive accounts
	// cannot authenticate and their access tokens stop resolving.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user passes admin-tier permission checks.
func (u User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

// Role returns the authorization tier resolved for this user.
func (u User) Role() Role {
	if u.IsAdmin() {
		return RoleAdmin
	}
	return RoleAuthenticated
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
