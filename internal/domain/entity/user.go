// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique community member.
// Accounts are never hard-deleted; the PasswordHash is empty for OAuth-only accounts.
type User struct {
	ID            uuid.UUID // The global unique identifier for the user.
	Email         string    // The user's primary contact email, used as the login identifier.
	Name          string    // The user's display name.
	PasswordHash  string    // The bcrypt-hashed password; empty when the account was created through OAuth.
	Role          Role      // The account role (USER, DEVELOPER, MODERATOR, ADMIN).
	Bio           string    // A short free-form self description.
	Location      string    // A free-form location string shown on the profile.
	Phone         string    // Contact phone number.
	PhoneVerified bool      // Whether the phone number passed verification.
	Image         string    // URL of the profile image.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can sign in with email and password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
