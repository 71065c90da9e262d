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

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindByID retrieves a non-deleted location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindByUser retrieves all non-deleted locations of a user, default first.
func (repo *locationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserLocation, error) {
	var locationMs []*model.UserLocationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("is_default DESC, created_at DESC").
		Find(&locationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by user")
	}

	locations := make([]*entity.UserLocation, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Update modifies an existing location record.
func (repo *locationRepository) Update(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// SoftDelete marks the location deleted without removing the row.
func (repo *locationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// ClearDefault unsets the default flag on all of the user's locations.
func (repo *locationRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("user_id = ? AND is_default AND deleted_at IS NULL", userID).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default location")
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		ID:         data.ID,
		UserID:     data.UserID,
		Type:       entity.LocationType(data.Type),
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Type:       string(data.Type),
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
	}
}
