package models

// RegisterRequest is the payload of the self-service registration endpoint.
// All four fields are required; registration always produces a non-admin,
// active account regardless of any extra fields in the request body.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CredentialsRequest is the payload of the token-obtain (login) endpoint.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the payload of the token-refresh endpoint.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// LogoutRequest is the payload of the logout endpoint. RefreshToken is
// required; the referenced token is blacklisted on success.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserCreateRequest is the payload of the admin-only user creation endpoint.
// Unlike self-service registration it may set the staff/superuser flags.
type UserCreateRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserUpdate represents a partial update of a single user record.
// Only non-nil fields will be updated.
type UserUpdate struct {
	// UserID is the identifier of the record to update. Required.
	UserID int64 `json:"-"`

	// Email replaces the login identifier when non-nil. Uniqueness is
	// still enforced at the storage layer.
	Email *string `json:"email,omitempty"`

	// Password replaces the stored credential when non-nil. The plaintext
	// is hashed before it reaches the repository.
	Password *string `json:"password,omitempty"`

	// FirstName updates the profile first name when non-nil.
	FirstName *string `json:"first_name,omitempty"`

	// LastName updates the profile last name when non-nil.
	LastName *string `json:"last_name,omitempty"`

	// IsStaff updates the staff flag when non-nil.
	IsStaff *bool `json:"is_staff,omitempty"`

	// IsSuperuser updates the superuser flag when non-nil.
	IsSuperuser *bool `json:"is_superuser,omitempty"`

	// IsActive updates the soft-disable flag when non-nil.
	IsActive *bool `json:"is_active,omitempty"`
}

// QuestionCreateRequest is the payload of the question creation endpoint.
// The owning user is taken from the request body to match the original API
// contract, not from the authenticated identity.
type QuestionCreateRequest struct {
	QuestionText string `json:"question_text"`
	UserID       int64  `json:"user"`
}
