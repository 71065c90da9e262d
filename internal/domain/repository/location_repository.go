// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a saved location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for saved address persistence.
type LocationRepository interface {
	// FindByID retrieves a non-deleted location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserLocation, error)

	// FindByUser retrieves all non-deleted locations of a user, default first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserLocation, error)

	// Create persists a new location.
	Create(ctx context.Context, location *entity.UserLocation) error

	// Update modifies an existing location record.
	Update(ctx context.Context, location *entity.UserLocation) error

	// SoftDelete marks the location deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on all of the user's locations.
	// Called before marking a new default so at most one remains set.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
