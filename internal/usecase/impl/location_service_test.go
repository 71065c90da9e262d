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

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		Logger:       newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
	}
}

func TestLocationService_ListLocations_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locations := []*entity.UserLocation{{ID: uuid.New(), UserID: userID, IsDefault: true}}

	fx.locationRepo.EXPECT().FindByUser(ctx, userID).Return(locations, nil)

	result, err := fx.service.ListLocations(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, locations, result)
}

func TestLocationService_CreateLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateLocationInput{
		UserID:     userID,
		Type:       entity.LocationTypeHome,
		Street:     "Khreshchatyk 1",
		City:       "Kyiv",
		PostalCode: "01001",
		Country:    "Ukraine",
	}

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Run(func(ctx context.Context, location *entity.UserLocation) {
			location.ID = uuid.New()
		}).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, location.UserID)
	assert.Equal(t, "Kyiv", location.City)
	assert.False(t, location.IsDefault)
}

func TestLocationService_CreateLocation_DefaultClearsPrevious(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateLocationInput{
		UserID:    userID,
		Type:      entity.LocationTypeWork,
		City:      "Lviv",
		Country:   "Ukraine",
		IsDefault: true,
	}

	fx.locationRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, input)

	require.NoError(t, err)
	assert.True(t, location.IsDefault)
}

func TestLocationService_CreateLocation_InvalidType(t *testing.T) {
	fx := createTestLocationService(t)

	input := &usecase.CreateLocationInput{
		UserID: uuid.New(),
		Type:   entity.LocationType("VACATION"),
	}

	location, err := fx.service.CreateLocation(context.Background(), input)

	assert.Nil(t, location)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_UpdateLocation_MakeDefault(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.UserLocation{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.LocationTypeHome,
		City:   "Kyiv",
	}

	makeDefault := true
	input := &usecase.UpdateLocationInput{
		UserID:     userID,
		LocationID: stored.ID,
		IsDefault:  &makeDefault,
	}

	fx.locationRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.locationRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	fx.locationRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateLocation(ctx, input)

	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
}

func TestLocationService_UpdateLocation_AlreadyDefaultSkipsClear(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.UserLocation{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      entity.LocationTypeHome,
		IsDefault: true,
	}

	stillDefault := true
	newCity := "Odesa"
	input := &usecase.UpdateLocationInput{
		UserID:     userID,
		LocationID: stored.ID,
		City:       &newCity,
		IsDefault:  &stillDefault,
	}

	fx.locationRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.locationRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateLocation(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Odesa", updated.City)
	assert.True(t, updated.IsDefault)
}

func TestLocationService_UpdateLocation_NotOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	stored := &entity.UserLocation{ID: uuid.New(), UserID: uuid.New()}

	newCity := "Kharkiv"
	input := &usecase.UpdateLocationInput{
		UserID:     uuid.New(),
		LocationID: stored.ID,
		City:       &newCity,
	}

	fx.locationRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	location, err := fx.service.UpdateLocation(ctx, input)

	assert.Nil(t, location)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

func TestLocationService_DeleteLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.UserLocation{ID: uuid.New(), UserID: userID}

	fx.locationRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.locationRepo.EXPECT().SoftDelete(ctx, stored.ID).Return(nil)

	err := fx.service.DeleteLocation(ctx, userID, stored.ID)

	require.NoError(t, err)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(nil, repository.ErrLocationNotFound)

	err := fx.service.DeleteLocation(ctx, uuid.New(), locationID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}
