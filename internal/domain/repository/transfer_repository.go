// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
)

// TransferRepository defines read-side access to book transfer requests.
// Status transitions are not modeled here: the transition rules (who may
// agree, when Kolocoins move, rollback on cancellation) are an unresolved
// product question, so the interface deliberately exposes no state mutation.
type TransferRepository interface {
	// FindIncoming retrieves transfers where the user is the listing owner,
	// newest first.
	FindIncoming(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookTransfer, error)

	// FindOutgoing retrieves transfers where the user is the requester,
	// newest first.
	FindOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*entity.BookTransfer, error)

	// Create persists a new transfer record. Used by seeding; no HTTP
	// operation mutates transfers today.
	Create(ctx context.Context, transfer *entity.BookTransfer) error
}
