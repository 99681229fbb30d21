package models

// Role is the coarse-grained authorization tier resolved for an incoming
// request. Roles form a strict order: Anonymous < Authenticated < Admin.
//
// Each routing entry declares the minimum Role it requires; the authorization
// middleware compares the resolved caller role against that requirement with
// [Role.Meets].
type Role int

const (
	// RoleAnonymous is the tier of a request carrying no credential.
	RoleAnonymous Role = iota

	// RoleAuthenticated is the tier of a request carrying a valid access
	// token resolving to an active user account.
	RoleAuthenticated

	// RoleAdmin is the tier of an authenticated user whose account has the
	// is_staff or is_superuser flag set.
	RoleAdmin
)

// Meets reports whether the role satisfies the given minimum requirement.
func (r Role) Meets(minimum Role) bool {
	return r >= minimum
}

// String returns a human-readable name for the role.
// It implements the [fmt.Stringer] interface.
func (r Role) String() string {
	switch r {
	case RoleAnonymous:
		return "anonymous"
	case RoleAuthenticated:
		return "authenticated"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
