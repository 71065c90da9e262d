// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found or soft-deleted.
	ErrListingNotFound = errors.New("listing not found")
	// ErrDuplicateListing is returned when the book copy already has a
	// non-deleted listing. Backed by the unique constraint on book_copy_id.
	ErrDuplicateListing = errors.New("listing already exists for this book copy")
)

// ListingFilter narrows the active listing feed. Zero values mean "no filter".
type ListingFilter struct {
	Genre          string
	TransferType   entity.TransferType
	DeliveryMethod entity.DeliveryMethod
	Search         string // Case-insensitive match against book title or author.
}

// ListingRepository defines the interface for listing persistence.
type ListingRepository interface {
	// FindByID retrieves a non-deleted listing by ID with its copy, book and
	// owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindBySlug retrieves a non-deleted listing by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Listing, error)

	// FindByBookCopy retrieves the non-deleted listing for a copy.
	// Returns ErrListingNotFound if the copy has none.
	FindByBookCopy(ctx context.Context, bookCopyID uuid.UUID) (*entity.Listing, error)

	// FindActive retrieves ACTIVE, non-deleted listings newest first,
	// narrowed by the filter.
	FindActive(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// Create persists a new listing. Returns ErrDuplicateListing when the
	// copy already has one.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update modifies an existing listing record.
	Update(ctx context.Context, listing *entity.Listing) error

	// SoftDelete marks the listing deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
