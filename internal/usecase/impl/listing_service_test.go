package impl

import (
	"context"
	"testing"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/domain/repository"
	mockRepo "kolotebe/internal/mocks/repository"
	mockSvc "kolotebe/internal/mocks/service"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockListingRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewListingService(ListingServiceParams{
		TxManager:   txManager,
		ListingRepo: listingRepo,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})

	return listingServiceFixtures{
		service:     service,
		txManager:   txManager,
		listingRepo: listingRepo,
		qrService:   qrService,
	}
}

func validCreateListingInput(userID, bookCopyID uuid.UUID) *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		UserID:          userID,
		BookCopyID:      bookCopyID,
		Description:     "Read once, great condition",
		Photos:          []string{"https://cdn.example.com/photo.jpg"},
		TransferTypes:   []entity.TransferType{entity.TransferTypeFree},
		DeliveryMethods: []entity.DeliveryMethod{entity.DeliveryNovaPoshta},
	}
}

func TestListingService_CreateListing_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookCopyID := uuid.New()
	input := validCreateListingInput(userID, bookCopyID)

	ownedCopy := &entity.BookCopy{
		ID:      bookCopyID,
		OwnerID: userID,
		Book:    &entity.Book{ID: uuid.New(), Title: "Kobzar", Author: "Taras Shevchenko"},
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
				FindByIDAndOwner(ctx, bookCopyID, userID).
				Return(ownedCopy, nil)

			mockListingRepo.EXPECT().
				FindByBookCopy(ctx, bookCopyID).
				Return(nil, repository.ErrListingNotFound)

			mockListingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Listing")).
				Run(func(ctx context.Context, listing *entity.Listing) {
					assert.Equal(t, entity.ListingStatusActive, listing.Status)
					assert.Contains(t, listing.Slug, "kobzar-taras-shevchenko")
					listing.ID = uuid.New()
				}).
				Return(nil)

			mockBalanceRepo.EXPECT().
				EnsureExists(ctx, userID).
				Return(&entity.UserBalance{UserID: userID}, nil)
			mockBalanceRepo.EXPECT().
				Credit(ctx, userID, entity.ShareReward, entity.TransactionTypeShareReward, "Reward for sharing a book").
				Return(nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.CreateListing(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, userID, listing.UserID)
	assert.Equal(t, bookCopyID, listing.BookCopyID)
	assert.NotEqual(t, uuid.Nil, listing.ID)
}

func TestListingService_ListActive_PassesFilter(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	filter := repository.ListingFilter{
		Genre:        "Poetry",
		TransferType: entity.TransferTypeFree,
		Search:       "kobzar",
	}
	found := []*entity.Listing{{ID: uuid.New()}}

	fx.listingRepo.EXPECT().FindActive(ctx, filter).Return(found, nil)

	listings, err := fx.service.ListActive(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, found, listings)
}

func TestListingService_GetListing_OwnerFlag(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listing := &entity.Listing{ID: uuid.New(), UserID: ownerID}

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil).Times(3)

	asOwner, err := fx.service.GetListing(ctx, listing.ID, ownerID)
	require.NoError(t, err)
	assert.True(t, asOwner.IsOwner)

	asStranger, err := fx.service.GetListing(ctx, listing.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, asStranger.IsOwner)

	asAnonymous, err := fx.service.GetListing(ctx, listing.ID, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, asAnonymous.IsOwner)
}

func TestListingService_UpdateListing_PartialFields(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Listing{
		ID:              uuid.New(),
		UserID:          userID,
		Description:     "old description",
		TransferTypes:   []entity.TransferType{entity.TransferTypeFree},
		DeliveryMethods: []entity.DeliveryMethod{entity.DeliveryNovaPoshta},
		Status:          entity.ListingStatusActive,
	}

	newDescription := "like new, smoke-free home"
	newStatus := entity.ListingStatusInactive
	input := &usecase.UpdateListingInput{
		UserID:      userID,
		ListingID:   stored.ID,
		Description: &newDescription,
		Status:      &newStatus,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
			mockListingRepo.EXPECT().Update(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateListing(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newDescription, updated.Description)
	assert.Equal(t, entity.ListingStatusInactive, updated.Status)
	// Untouched fields keep their stored values.
	assert.Equal(t, []entity.TransferType{entity.TransferTypeFree}, updated.TransferTypes)
}

func TestListingService_DeleteListing_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	listing := &entity.Listing{ID: uuid.New(), UserID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
			mockListingRepo.EXPECT().SoftDelete(ctx, listing.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteListing(ctx, userID, listing.ID)

	require.NoError(t, err)
}

func TestListingService_GenerateListingQR_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), Slug: "kobzar-taras-shevchenko-abc12345"}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.qrService.EXPECT().GenerateListingQR(listing.Slug).Return(pngBytes, nil)

	result, err := fx.service.GenerateListingQR(ctx, listing.ID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, result)
}
