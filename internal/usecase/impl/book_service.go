package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kolotebe/internal/delivery/context"
	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchResultLimit caps the number of books returned by a catalog search.
const searchResultLimit = 10

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager    repository.TransactionManager
	bookRepo     repository.BookRepository
	bookCopyRepo repository.BookCopyRepository
	logger       *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookRepo     repository.BookRepository
	BookCopyRepo repository.BookCopyRepository
	Logger       *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager:    params.TxManager,
		bookRepo:     params.BookRepo,
		bookCopyRepo: params.BookCopyRepo,
		logger:       params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook deduplicates or creates the catalog book, creates the physical
// copy, and ensures the owner's Kolocoin balance exists. The three writes
// share one transaction so a failure leaves no partial state behind.
func (srv *bookService) AddBook(ctx context.Context, input *usecase.AddBookInput) (*usecase.AddBookOutput, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Author) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and author are required")
	}
	if !input.Condition.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid book condition")
	}

	srv.log(ctx).Info("Adding book",
		slog.String("title", input.Title),
		slog.String("author", input.Author),
		slog.Any("ownerID", input.OwnerID))

	var output usecase.AddBookOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		copyRepo := repoFactory.BookCopyRepo()
		balanceRepo := repoFactory.BalanceRepo()

		book, created, err := srv.dedupOrCreateBook(ctx, bookRepo, input)
		if err != nil {
			return err
		}

		newCopy := &entity.BookCopy{
			BookID:      book.ID,
			OwnerID:     input.OwnerID,
			Condition:   input.Condition,
			Notes:       input.Notes,
			IsAvailable: true,
		}
		if err := copyRepo.Create(ctx, newCopy); err != nil {
			return errors.Wrap(err, "failed to create book copy")
		}

		if _, err := balanceRepo.EnsureExists(ctx, input.OwnerID); err != nil {
			return errors.Wrap(err, "failed to ensure balance exists")
		}

		output = usecase.AddBookOutput{
			BookID:     book.ID,
			BookCopyID: newCopy.ID,
			Created:    created,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add book", slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Book added",
		slog.Any("bookID", output.BookID),
		slog.Any("bookCopyID", output.BookCopyID),
		slog.Bool("created", output.Created))

	return &output, nil
}

// dedupOrCreateBook resolves the catalog entry for the input. An exact ISBN
// match wins; otherwise a case-insensitive (title, author) match; otherwise a
// new book is created. No fuzzy matching.
func (srv *bookService) dedupOrCreateBook(ctx context.Context, bookRepo repository.BookRepository, input *usecase.AddBookInput) (*entity.Book, bool, error) {
	if input.ISBN != "" {
		book, err := bookRepo.FindByISBN(ctx, input.ISBN)
		if err == nil {
			return book, false, nil
		}
		if !errors.Is(err, repository.ErrBookNotFound) {
			return nil, false, errors.Wrap(err, "failed to look up book by isbn")
		}
	}

	book, err := bookRepo.FindByTitleAuthor(ctx, input.Title, input.Author)
	if err == nil {
		return book, false, nil
	}
	if !errors.Is(err, repository.ErrBookNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up book by title and author")
	}

	newBook := &entity.Book{
		Title:           strings.TrimSpace(input.Title),
		Author:          strings.TrimSpace(input.Author),
		ISBN:            input.ISBN,
		Genre:           input.Genre,
		PublicationYear: input.PublicationYear,
		Description:     input.Description,
		CoverImage:      input.CoverImage,
	}
	if err := bookRepo.Create(ctx, newBook); err != nil {
		return nil, false, errors.Wrap(err, "failed to create book")
	}

	return newBook, true, nil
}

// SearchBooks retrieves up to 10 books matching title or author.
func (srv *bookService) SearchBooks(ctx context.Context, query string) ([]*entity.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query is required")
	}

	books, err := srv.bookRepo.Search(ctx, query, searchResultLimit)
	if err != nil {
		srv.log(ctx).Error("Book search failed", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

// GetBook retrieves a book with its copies, owners and listing summaries.
func (srv *bookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load book")
	}

	return book, nil
}

// ListMyCopies retrieves the caller's copies newest first.
func (srv *bookService) ListMyCopies(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookCopy, error) {
	copies, err := srv.bookCopyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list book copies", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list book copies")
	}

	return copies, nil
}
