// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for book persistence.
var (
	// ErrBookNotFound is returned when a book is not found or soft-deleted.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookCopyNotFound is returned when a book copy is not found, soft-deleted,
	// or not owned by the requesting user.
	ErrBookCopyNotFound = errors.New("book copy not found")
)

// BookRepository defines the interface for catalog book persistence.
type BookRepository interface {
	// FindByID retrieves a non-deleted book by ID, including its non-deleted
	// copies with owner summaries and listing summaries.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByISBN retrieves a non-deleted book by exact ISBN match.
	// Returns ErrBookNotFound if no such book exists.
	FindByISBN(ctx context.Context, isbn string) (*entity.Book, error)

	// FindByTitleAuthor retrieves a non-deleted book matching the given title
	// and author case-insensitively. Returns ErrBookNotFound if none matches.
	FindByTitleAuthor(ctx context.Context, title, author string) (*entity.Book, error)

	// Search retrieves up to limit non-deleted books whose title or author
	// contains the query case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*entity.Book, error)

	// Create persists a new catalog book.
	Create(ctx context.Context, book *entity.Book) error
}

// BookCopyRepository defines the interface for physical copy persistence.
type BookCopyRepository interface {
	// FindByIDAndOwner retrieves a non-deleted copy by ID owned by the given
	// user, including its book. Returns ErrBookCopyNotFound otherwise.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.BookCopy, error)

	// FindByOwner retrieves the owner's non-deleted copies newest first,
	// each with its book and listing summary.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookCopy, error)

	// Create persists a new book copy.
	Create(ctx context.Context, copy *entity.BookCopy) error
}
