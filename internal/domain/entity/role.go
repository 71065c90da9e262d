// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user account can have in the system.
type Role string

const (
	// RoleUser indicates a regular community member.
	RoleUser Role = "USER"
	// RoleDeveloper indicates a developer with access to internal API documentation.
	RoleDeveloper Role = "DEVELOPER"
	// RoleModerator indicates a content moderator.
	RoleModerator Role = "MODERATOR"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleDeveloper, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Capabilities holds the boolean capability flags derived from a role.
type Capabilities struct {
	IsDeveloper bool
	IsAdmin     bool
	IsModerator bool
}

// Capabilities derives the capability flags for the role. The derivation is a
// pure table lookup so authorization decisions stay in one place.
func (r Role) Capabilities() Capabilities {
	return Capabilities{
		IsDeveloper: r == RoleDeveloper || r == RoleAdmin,
		IsAdmin:     r == RoleAdmin,
		IsModerator: r == RoleModerator,
	}
}
