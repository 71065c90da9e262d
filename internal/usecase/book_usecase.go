package usecase

import (
	"context"

	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddBookInput defines the data required to add a book with its first
// physical copy.
type AddBookInput struct {
	OwnerID         uuid.UUID
	Title           string
	Author          string
	ISBN            string
	Genre           string
	PublicationYear *int
	Description     string
	CoverImage      string
	Condition       entity.Condition
	Notes           string
}

// --- Output DTOs ---

// AddBookOutput returns the identifiers of the deduplicated (or newly
// created) catalog book and the fresh copy.
type AddBookOutput struct {
	BookID     uuid.UUID
	BookCopyID uuid.UUID
	Created    bool // Whether a new catalog book was created, false on dedup.
}

// BookUsecase defines the interface for catalog and copy operations.
type BookUsecase interface {
	// AddBook deduplicates or creates the catalog book, creates the copy,
	// and ensures the owner's Kolocoin balance exists, all atomically.
	AddBook(ctx context.Context, input *AddBookInput) (*AddBookOutput, error)

	// SearchBooks retrieves up to 10 books matching title or author.
	SearchBooks(ctx context.Context, query string) ([]*entity.Book, error)

	// GetBook retrieves a book with its copies, owners and listing summaries.
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// ListMyCopies retrieves the caller's copies newest first.
	ListMyCopies(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookCopy, error)
}
