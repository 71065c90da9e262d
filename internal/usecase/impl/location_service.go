package impl

import (
	"context"
	"log/slog"

	deliverycontext "kolotebe/internal/delivery/context"
	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocations retrieves the caller's locations, default first.
func (srv *locationService) ListLocations(ctx context.Context, userID uuid.UUID) ([]*entity.UserLocation, error) {
	locations, err := srv.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list locations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// CreateLocation saves a new address. Marking it default clears the previous
// default first so at most one remains.
func (srv *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.UserLocation, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid location type")
	}

	if input.IsDefault {
		if err := srv.locationRepo.ClearDefault(ctx, input.UserID); err != nil {
			return nil, errors.Wrap(err, "failed to clear previous default location")
		}
	}

	newLocation := &entity.UserLocation{
		UserID:     input.UserID,
		Type:       input.Type,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}

	if err := srv.locationRepo.Create(ctx, newLocation); err != nil {
		srv.log(ctx).Warn("Failed to create location", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Debug("Location created", slog.Any("locationID", newLocation.ID))

	return newLocation, nil
}

// UpdateLocation applies a partial update after checking ownership.
func (srv *locationService) UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) (*entity.UserLocation, error) {
	location, err := srv.loadOwnedLocation(ctx, input.LocationID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid location type")
		}
		location.Type = *input.Type
	}
	if input.Street != nil {
		location.Street = *input.Street
	}
	if input.City != nil {
		location.City = *input.City
	}
	if input.PostalCode != nil {
		location.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		location.Country = *input.Country
	}
	if input.IsDefault != nil {
		if *input.IsDefault && !location.IsDefault {
			if err := srv.locationRepo.ClearDefault(ctx, input.UserID); err != nil {
				return nil, errors.Wrap(err, "failed to clear previous default location")
			}
		}
		location.IsDefault = *input.IsDefault
	}

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		srv.log(ctx).Warn("Failed to update location", slog.Any("locationID", input.LocationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

// DeleteLocation soft-deletes the address after checking ownership.
func (srv *locationService) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	if _, err := srv.loadOwnedLocation(ctx, locationID, userID); err != nil {
		return err
	}

	if err := srv.locationRepo.SoftDelete(ctx, locationID); err != nil {
		srv.log(ctx).Warn("Failed to delete location", slog.Any("locationID", locationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// loadOwnedLocation loads a location and enforces that the caller owns it.
func (srv *locationService) loadOwnedLocation(ctx context.Context, locationID, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "location lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	if location.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrLocationOwnershipViolation, "caller does not own the location")
	}

	return location, nil
}
