package postgres

import (
	"context"

	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the domain.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a non-deleted book by ID, preloading its non-deleted
// copies with their owners and listings.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Preload("Copies", "deleted_at IS NULL").
		Preload("Copies.Owner").
		Preload("Copies.Listing", "deleted_at IS NULL").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&bookM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByISBN retrieves a non-deleted book by exact ISBN match.
func (repo *bookRepository) FindByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("isbn = ? AND deleted_at IS NULL", isbn).
		First(&bookM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by isbn")
	}

	return toBookDomain(&bookM), nil
}

// FindByTitleAuthor retrieves a non-deleted book matching the given title and
// author case-insensitively.
func (repo *bookRepository) FindByTitleAuthor(ctx context.Context, title, author string) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(title) = LOWER(?) AND LOWER(author) = LOWER(?) AND deleted_at IS NULL", title, author).
		First(&bookM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by title and author")
	}

	return toBookDomain(&bookM), nil
}

// Search retrieves up to limit non-deleted books whose title or author
// contains the query case-insensitively.
func (repo *bookRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Book, error) {
	pattern := "%" + query + "%"

	var bookMs []*model.BookModel
	err := repo.db.WithContext(ctx).
		Where("(title ILIKE ? OR author ILIKE ?) AND deleted_at IS NULL", pattern, pattern).
		Order("title ASC").
		Limit(limit).
		Find(&bookMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	books := make([]*entity.Book, 0, len(bookMs))
	for _, bookM := range bookMs {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// Create persists a new catalog book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("book with this ISBN already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// bookCopyRepository implements the domain.BookCopyRepository interface using GORM.
type bookCopyRepository struct {
	db *gorm.DB
}

// NewBookCopyRepository is the constructor for bookCopyRepository.
func NewBookCopyRepository(db *gorm.DB) repository.BookCopyRepository {
	return &bookCopyRepository{db: db}
}

// FindByIDAndOwner retrieves a non-deleted copy by ID owned by the given user.
// The owner scope doubles as the access check: a copy belonging to someone
// else is indistinguishable from a missing one.
func (repo *bookCopyRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.BookCopy, error) {
	var copyM model.BookCopyModel
	err := repo.db.WithContext(ctx).
		Preload("Book").
		Preload("Listing", "deleted_at IS NULL").
		Where("id = ? AND owner_id = ? AND deleted_at IS NULL", id, ownerID).
		First(&copyM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookCopyNotFound
		}

		return nil, errors.Wrap(err, "failed to find book copy")
	}

	return toBookCopyDomain(&copyM), nil
}

// FindByOwner retrieves the owner's non-deleted copies newest first.
func (repo *bookCopyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookCopy, error) {
	var copyMs []*model.BookCopyModel
	err := repo.db.WithContext(ctx).
		Preload("Book").
		Preload("Listing", "deleted_at IS NULL").
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Order("created_at DESC").
		Find(&copyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book copies by owner")
	}

	copies := make([]*entity.BookCopy, 0, len(copyMs))
	for _, copyM := range copyMs {
		copies = append(copies, toBookCopyDomain(copyM))
	}

	return copies, nil
}

// Create persists a new book copy.
func (repo *bookCopyRepository) Create(ctx context.Context, copy *entity.BookCopy) error {
	copyM := fromBookCopyDomain(copy)

	if err := repo.db.WithContext(ctx).Create(copyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookNotFound.WrapMessage("referenced book does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book copy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book copy")
	}

	copy.ID = copyM.ID
	copy.CreatedAt = copyM.CreatedAt
	copy.UpdatedAt = copyM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	var isbn string
	if data.ISBN != nil {
		isbn = *data.ISBN
	}

	book := &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            isbn,
		Genre:           data.Genre,
		PublicationYear: data.PublicationYear,
		Description:     data.Description,
		CoverImage:      data.CoverImage,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, copyM := range data.Copies {
		book.Copies = append(book.Copies, toBookCopyDomain(copyM))
	}

	return book
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
// ISBN is stored as NULL rather than the empty string so the unique
// constraint only applies to books that actually have one.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	var isbn *string
	if data.ISBN != "" {
		isbn = &data.ISBN
	}

	return &model.BookModel{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            isbn,
		Genre:           data.Genre,
		PublicationYear: data.PublicationYear,
		Description:     data.Description,
		CoverImage:      data.CoverImage,
		CreatedAt:       data.CreatedAt,
	}
}

// toBookCopyDomain converts a GORM BookCopyModel to a domain BookCopy entity.
func toBookCopyDomain(data *model.BookCopyModel) *entity.BookCopy {
	if data == nil {
		return nil
	}

	return &entity.BookCopy{
		ID:          data.ID,
		BookID:      data.BookID,
		OwnerID:     data.OwnerID,
		Condition:   entity.Condition(data.Condition),
		Notes:       data.Notes,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Book:        toBookDomain(data.Book),
		Owner:       toUserDomain(data.Owner),
		Listing:     toListingDomain(data.Listing),
	}
}

// fromBookCopyDomain converts a domain BookCopy entity to a GORM BookCopyModel.
func fromBookCopyDomain(data *entity.BookCopy) *model.BookCopyModel {
	if data == nil {
		return nil
	}

	return &model.BookCopyModel{
		ID:          data.ID,
		BookID:      data.BookID,
		OwnerID:     data.OwnerID,
		Condition:   data.Condition.String(),
		Notes:       data.Notes,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
	}
}
