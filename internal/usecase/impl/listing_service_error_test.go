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

func TestListingService_CreateListing_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.CreateListingInput)
	}{
		{
			name: "no transfer types",
			mutate: func(input *usecase.CreateListingInput) {
				input.TransferTypes = nil
			},
		},
		{
			name: "invalid transfer type",
			mutate: func(input *usecase.CreateListingInput) {
				input.TransferTypes = []entity.TransferType{"BARTER"}
			},
		},
		{
			name: "no delivery methods",
			mutate: func(input *usecase.CreateListingInput) {
				input.DeliveryMethods = nil
			},
		},
		{
			name: "invalid delivery method",
			mutate: func(input *usecase.CreateListingInput) {
				input.DeliveryMethods = []entity.DeliveryMethod{"CARRIER_PIGEON"}
			},
		},
		{
			name: "self pickup without location",
			mutate: func(input *usecase.CreateListingInput) {
				input.DeliveryMethods = []entity.DeliveryMethod{entity.DeliverySelfPickup}
				input.PickupLocation = "  "
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)

			input := validCreateListingInput(uuid.New(), uuid.New())
			tt.mutate(input)

			listing, err := fx.service.CreateListing(context.Background(), input)

			assert.Nil(t, listing)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestListingService_CreateListing_CopyNotOwned(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := validCreateListingInput(uuid.New(), uuid.New())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockCopyRepo.EXPECT().
				FindByIDAndOwner(ctx, input.BookCopyID, input.UserID).
				Return(nil, repository.ErrBookCopyNotFound)

			return fn(mockFactory)
		})

	listing, err := fx.service.CreateListing(ctx, input)

	assert.Nil(t, listing)
	require.Error(t, err)
	// A copy owned by someone else reads as not found, never as forbidden.
	assert.True(t, errors.Is(err, domainerrors.ErrBookCopyNotFound))
}

func TestListingService_CreateListing_DuplicateCopy(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := validCreateListingInput(uuid.New(), uuid.New())
	ownedCopy := &entity.BookCopy{ID: input.BookCopyID, OwnerID: input.UserID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockCopyRepo.EXPECT().
				FindByIDAndOwner(ctx, input.BookCopyID, input.UserID).
				Return(ownedCopy, nil)

			mockListingRepo.EXPECT().
				FindByBookCopy(ctx, input.BookCopyID).
				Return(&entity.Listing{ID: uuid.New(), BookCopyID: input.BookCopyID}, nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.CreateListing(ctx, input)

	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingAlreadyExists))
}

func TestListingService_CreateListing_DuplicateRace(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := validCreateListingInput(uuid.New(), uuid.New())
	ownedCopy := &entity.BookCopy{
		ID:      input.BookCopyID,
		OwnerID: input.UserID,
		Book:    &entity.Book{Title: "Kobzar", Author: "Taras Shevchenko"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCopyRepo := mockRepo.NewMockBookCopyRepository(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockBalanceRepo := mockRepo.NewMockBalanceRepository(t)

			mockFactory.EXPECT().BookCopyRepo().Return(mockCopyRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().BalanceRepo().Return(mockBalanceRepo)

			mockCopyRepo.EXPECT().
				FindByIDAndOwner(ctx, input.BookCopyID, input.UserID).
				Return(ownedCopy, nil)

			mockListingRepo.EXPECT().
				FindByBookCopy(ctx, input.BookCopyID).
				Return(nil, repository.ErrListingNotFound)

			// A concurrent create slipped in between the lookup and the
			// insert; the unique index reports it.
			mockListingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Listing")).
				Return(repository.ErrDuplicateListing)

			return fn(mockFactory)
		})

	listing, err := fx.service.CreateListing(ctx, input)

	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingAlreadyExists))
}

func TestListingService_UpdateListing_NotOwner(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	stored := &entity.Listing{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		TransferTypes:   []entity.TransferType{entity.TransferTypeFree},
		DeliveryMethods: []entity.DeliveryMethod{entity.DeliveryNovaPoshta},
	}

	newDescription := "trying to edit someone else's listing"
	input := &usecase.UpdateListingInput{
		UserID:      uuid.New(),
		ListingID:   stored.ID,
		Description: &newDescription,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.UpdateListing(ctx, input)

	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingOwnershipViolation))
}

func TestListingService_UpdateListing_InvalidStatus(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Listing{
		ID:              uuid.New(),
		UserID:          userID,
		TransferTypes:   []entity.TransferType{entity.TransferTypeFree},
		DeliveryMethods: []entity.DeliveryMethod{entity.DeliveryNovaPoshta},
	}

	badStatus := entity.ListingStatus("ARCHIVED")
	input := &usecase.UpdateListingInput{
		UserID:    userID,
		ListingID: stored.ID,
		Status:    &badStatus,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.UpdateListing(ctx, input)

	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestListingService_DeleteListing_NotOwner(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	stored := &entity.Listing{ID: uuid.New(), UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteListing(ctx, uuid.New(), stored.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingOwnershipViolation))
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, listingID).Return(nil, repository.ErrListingNotFound)

	output, err := fx.service.GetListing(ctx, listingID, uuid.Nil)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}
