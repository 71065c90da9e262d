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
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	userRepo     *mockRepo.MockUserRepository
	balanceRepo  *mockRepo.MockBalanceRepository
	transferRepo *mockRepo.MockTransferRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	balanceRepo := mockRepo.NewMockBalanceRepository(t)
	transferRepo := mockRepo.NewMockTransferRepository(t)

	service := NewProfileService(ProfileServiceParams{
		UserRepo:     userRepo,
		BalanceRepo:  balanceRepo,
		TransferRepo: transferRepo,
		Logger:       newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		balanceRepo:  balanceRepo,
		transferRepo: transferRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.balanceRepo.EXPECT().FindByUser(ctx, user.ID).Return(&entity.UserBalance{UserID: user.ID, Balance: 7}, nil)
	fx.userRepo.EXPECT().CountProfileStats(ctx, user.ID).
		Return(&repository.UserProfileCounts{BookCopies: 3, ActiveListings: 2}, nil)

	output, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, 7, output.Balance)
	assert.Equal(t, int64(3), output.BookCopies)
	assert.Equal(t, int64(2), output.ActiveListings)
}

func TestProfileService_GetProfile_NoBalanceRowReadsAsZero(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.balanceRepo.EXPECT().FindByUser(ctx, user.ID).Return(nil, repository.ErrBalanceNotFound)
	fx.userRepo.EXPECT().CountProfileStats(ctx, user.ID).
		Return(&repository.UserProfileCounts{}, nil)

	output, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.Balance)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Name:  "Old Name",
		Bio:   "old bio",
	}

	newName := "New Name"
	input := &usecase.UpdateProfileInput{UserID: stored.ID, Name: &newName}

	fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "old bio", updated.Bio)
}

func TestProfileService_UpdateProfile_PhoneChangeResetsVerification(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:            uuid.New(),
		Email:         "test@example.com",
		Phone:         "+380501112233",
		PhoneVerified: true,
	}

	newPhone := "+380671234567"
	input := &usecase.UpdateProfileInput{UserID: stored.ID, Phone: &newPhone}

	fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.False(t, updated.PhoneVerified)
}

func TestProfileService_UpdateProfile_SamePhoneKeepsVerification(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:            uuid.New(),
		Email:         "test@example.com",
		Phone:         "+380501112233",
		PhoneVerified: true,
	}

	samePhone := stored.Phone
	input := &usecase.UpdateProfileInput{UserID: stored.ID, Phone: &samePhone}

	fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.True(t, updated.PhoneVerified)
}

func TestProfileService_ListTransactions_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	ledger := []*entity.BalanceTransaction{
		{ID: uuid.New(), UserID: userID, Amount: 1, Type: entity.TransactionTypeShareReward},
	}

	fx.balanceRepo.EXPECT().ListTransactions(ctx, userID).Return(ledger, nil)

	transactions, err := fx.service.ListTransactions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, ledger, transactions)
}

func TestProfileService_ListTransfers_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	incoming := []*entity.BookTransfer{{ID: uuid.New(), OwnerID: userID}}
	outgoing := []*entity.BookTransfer{{ID: uuid.New(), RequesterID: userID}}

	fx.transferRepo.EXPECT().FindIncoming(ctx, userID).Return(incoming, nil)
	fx.transferRepo.EXPECT().FindOutgoing(ctx, userID).Return(outgoing, nil)

	output, err := fx.service.ListTransfers(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, incoming, output.Incoming)
	assert.Equal(t, outgoing, output.Outgoing)
}
