// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserProfileCounts holds the aggregate counts shown on a user's profile.
type UserProfileCounts struct {
	BookCopies     int64 // Non-deleted copies owned by the user.
	ActiveListings int64 // ACTIVE, non-deleted listings owned by the user.
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// CountProfileStats returns the copy and active listing counts for a user.
	CountProfileStats(ctx context.Context, userID uuid.UUID) (*UserProfileCounts, error)
}
