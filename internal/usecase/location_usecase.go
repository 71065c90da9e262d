package usecase

import (
	"context"

	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateLocationInput defines the data required to save a delivery address.
type CreateLocationInput struct {
	UserID     uuid.UUID
	Type       entity.LocationType
	Street     string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
}

// UpdateLocationInput defines a partial location update. Nil fields are left
// untouched.
type UpdateLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
	Type       *entity.LocationType
	Street     *string
	City       *string
	PostalCode *string
	Country    *string
	IsDefault  *bool
}

// LocationUsecase defines the interface for saved address operations.
// At most one non-deleted location per user carries the default flag;
// marking a new default clears the previous one.
type LocationUsecase interface {
	// ListLocations retrieves the caller's locations, default first.
	ListLocations(ctx context.Context, userID uuid.UUID) ([]*entity.UserLocation, error)

	// CreateLocation saves a new address.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.UserLocation, error)

	// UpdateLocation applies a partial update after checking ownership.
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*entity.UserLocation, error)

	// DeleteLocation soft-deletes the address after checking ownership.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error
}
