package impl

import (
	"context"
	"testing"

	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	mockRepo "kolotebe/internal/mocks/repository"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookServiceFixtures holds all test dependencies for book service tests.
type bookServiceFixtures struct {
	service      usecase.BookUsecase
	txManager    *mockRepo.MockTransactionManager
	bookRepo     *mockRepo.MockBookRepository
	bookCopyRepo *mockRepo.MockBookCopyRepository
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	bookCopyRepo := mockRepo.NewMockBookCopyRepository(t)

	service := NewBookService(BookServiceParams{
		TxManager:    txManager,
		BookRepo:     bookRepo,
		BookCopyRepo: bookCopyRepo,
		Logger:       newDiscardLogger(),
	})

	return bookServiceFixtures{
		service:      service,
		txManager:    txManager,
		bookRepo:     bookRepo,
		bookCopyRepo: bookCopyRepo,
	}
}

func validAddBookInput(ownerID uuid.UUID) *usecase.AddBookInput {
	return &usecase.AddBookInput{
		OwnerID:   ownerID,
		Title:     "Kobzar",
		Author:    "Taras Shevchenko",
		ISBN:      "9789660375437",
		Genre:     "Poetry",
		Condition: entity.ConditionGood,
	}
}

func TestBookService_AddBook_CreatesNewBook(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validAddBookInput(ownerID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockBookRepo.EXPECT().
				FindByISBN(ctx, input.ISBN).
				Return(nil, repository.ErrBookNotFound)
			mockBookRepo.EXPECT().
				FindByTitleAuthor(ctx, input.Title, input.Author).
				Return(nil, repository.ErrBookNotFound)
			mockBookRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Book")).
				Run(func(ctx context.Context, book *entity.Book) {
					book.ID = uuid.New()
				}).
				Return(nil)

			mockCopyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BookCopy")).
				Run(func(ctx context.Context, copy *entity.BookCopy) {
					assert.Equal(t, ownerID, copy.OwnerID)
					assert.True(t, copy.IsAvailable)
					copy.ID = uuid.New()
				}).
				Return(nil)

			mockBalanceRepo.EXPECT().
				EnsureExists(ctx, ownerID).
				Return(&entity.UserBalance{UserID: ownerID}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.AddBook(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Created)
	assert.NotEqual(t, uuid.Nil, output.BookID)
	assert.NotEqual(t, uuid.Nil, output.BookCopyID)
}

func TestBookService_AddBook_DeduplicatesByISBN(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validAddBookInput(ownerID)
	existingBook := &entity.Book{ID: uuid.New(), Title: input.Title, Author: input.Author, ISBN: input.ISBN}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockBookRepo.EXPECT().FindByISBN(ctx, input.ISBN).Return(existingBook, nil)

			mockCopyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BookCopy")).
				Run(func(ctx context.Context, copy *entity.BookCopy) {
					assert.Equal(t, existingBook.ID, copy.BookID)
					copy.ID = uuid.New()
				}).
				Return(nil)

			mockBalanceRepo.EXPECT().
				EnsureExists(ctx, ownerID).
				Return(&entity.UserBalance{UserID: ownerID}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.AddBook(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existingBook.ID, output.BookID)
}

func TestBookService_AddBook_DeduplicatesByTitleAuthor(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validAddBookInput(ownerID)
	input.ISBN = ""
	existingBook := &entity.Book{ID: uuid.New(), Title: input.Title, Author: input.Author}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockBookRepo.EXPECT().
				FindByTitleAuthor(ctx, input.Title, input.Author).
				Return(existingBook, nil)

			mockCopyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BookCopy")).
				Run(func(ctx context.Context, copy *entity.BookCopy) {
					copy.ID = uuid.New()
				}).
				Return(nil)

			mockBalanceRepo.EXPECT().
				EnsureExists(ctx, ownerID).
				Return(&entity.UserBalance{UserID: ownerID}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.AddBook(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existingBook.ID, output.BookID)
}

func TestBookService_AddBook_MissingTitle(t *testing.T) {
	fx := createTestBookService(t)

	input := validAddBookInput(uuid.New())
	input.Title = "   "

	output, err := fx.service.AddBook(context.Background(), input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_AddBook_InvalidCondition(t *testing.T) {
	fx := createTestBookService(t)

	input := validAddBookInput(uuid.New())
	input.Condition = entity.Condition("PRISTINE")

	output, err := fx.service.AddBook(context.Background(), input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_SearchBooks_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	found := []*entity.Book{{ID: uuid.New(), Title: "Kobzar", Author: "Taras Shevchenko"}}

	fx.bookRepo.EXPECT().Search(ctx, "kobzar", searchResultLimit).Return(found, nil)

	books, err := fx.service.SearchBooks(ctx, "kobzar")

	require.NoError(t, err)
	assert.Equal(t, found, books)
}

func TestBookService_SearchBooks_BlankQuery(t *testing.T) {
	fx := createTestBookService(t)

	books, err := fx.service.SearchBooks(context.Background(), "   ")

	assert.Nil(t, books)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	book, err := fx.service.GetBook(ctx, bookID)

	assert.Nil(t, book)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_ListMyCopies_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	copies := []*entity.BookCopy{{ID: uuid.New(), OwnerID: ownerID}}

	fx.bookCopyRepo.EXPECT().FindByOwner(ctx, ownerID).Return(copies, nil)

	result, err := fx.service.ListMyCopies(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, copies, result)
}
