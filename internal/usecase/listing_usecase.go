package usecase

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a listing.
type CreateListingInput struct {
	UserID          uuid.UUID
	BookCopyID      uuid.UUID
	Description     string
	Photos          []string
	TransferTypes   []entity.TransferType
	DeliveryMethods []entity.DeliveryMethod
	PickupLocation  string
}

// UpdateListingInput defines a partial listing update. Nil fields are left
// untouched; non-nil fields replace the stored value entirely.
type UpdateListingInput struct {
	UserID          uuid.UUID
	ListingID       uuid.UUID
	Description     *string
	Photos          *[]string
	TransferTypes   *[]entity.TransferType
	DeliveryMethods *[]entity.DeliveryMethod
	PickupLocation  *string
	Status          *entity.ListingStatus
}

// --- Output DTOs ---

// ListingDetailOutput pairs a listing with the caller's ownership flag.
type ListingDetailOutput struct {
	Listing *entity.Listing
	IsOwner bool
}

// ListingUsecase defines the interface for listing operations.
type ListingUsecase interface {
	// CreateListing verifies copy ownership, validates the offer, generates
	// the slug, publishes the listing as ACTIVE and credits the share reward,
	// all atomically.
	CreateListing(ctx context.Context, input *CreateListingInput) (*entity.Listing, error)

	// ListActive retrieves the active listing feed narrowed by the filter.
	ListActive(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error)

	// GetListing retrieves a listing by ID. viewerID is uuid.Nil for
	// anonymous callers, in which case IsOwner is always false.
	GetListing(ctx context.Context, id, viewerID uuid.UUID) (*ListingDetailOutput, error)

	// UpdateListing applies a partial update after checking ownership.
	UpdateListing(ctx context.Context, input *UpdateListingInput) (*entity.Listing, error)

	// DeleteListing soft-deletes the listing after checking ownership.
	DeleteListing(ctx context.Context, userID, listingID uuid.UUID) error

	// GenerateListingQR renders a PNG QR code pointing at the listing's
	// public share URL.
	GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
