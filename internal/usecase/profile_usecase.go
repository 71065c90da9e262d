package usecase

import (
	"context"

	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     *string
	Bio      *string
	Location *string
	Phone    *string
	Image    *string
}

// --- Output DTOs ---

// ProfileOutput combines the user record with their Kolocoin balance and the
// aggregate counts shown on the profile page.
type ProfileOutput struct {
	User           *entity.User
	Balance        int
	BookCopies     int64
	ActiveListings int64
}

// TransfersOutput splits the user's transfer requests by direction.
type TransfersOutput struct {
	Incoming []*entity.BookTransfer // The user is the listing owner.
	Outgoing []*entity.BookTransfer // The user is the requester.
}

// ProfileUsecase defines the interface for the authenticated user's own
// profile operations.
type ProfileUsecase interface {
	// GetProfile retrieves the caller's profile with balance and counts.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// ListTransactions retrieves the caller's Kolocoin ledger, newest first.
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceTransaction, error)

	// ListTransfers retrieves the caller's incoming and outgoing transfers.
	ListTransfers(ctx context.Context, userID uuid.UUID) (*TransfersOutput, error)
}
