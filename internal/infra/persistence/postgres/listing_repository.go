package postgres

import (
	"context"

	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// FindByID retrieves a non-deleted listing by ID with its copy, book and owner.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Preload("BookCopy.Book").
		Preload("User").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&listingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// FindBySlug retrieves a non-deleted listing by its unique slug.
func (repo *listingRepository) FindBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Preload("BookCopy.Book").
		Preload("User").
		Where("slug = ? AND deleted_at IS NULL", slug).
		First(&listingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by slug")
	}

	return toListingDomain(&listingM), nil
}

// FindByBookCopy retrieves the non-deleted listing for a copy.
func (repo *listingRepository) FindByBookCopy(ctx context.Context, bookCopyID uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("book_copy_id = ? AND deleted_at IS NULL", bookCopyID).
		First(&listingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by book copy")
	}

	return toListingDomain(&listingM), nil
}

// FindActive retrieves ACTIVE, non-deleted listings newest first, narrowed by
// the filter. Genre and search filters join through the copy to the catalog
// book; array filters use Postgres array containment.
func (repo *listingRepository) FindActive(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Preload("BookCopy.Book").
		Preload("User").
		Joins("JOIN book_copies ON book_copies.id = listings.book_copy_id").
		Joins("JOIN books ON books.id = book_copies.book_id").
		Where("listings.status = ? AND listings.deleted_at IS NULL", entity.ListingStatusActive)

	if filter.Genre != "" {
		query = query.Where("books.genre = ?", filter.Genre)
	}
	if filter.TransferType != "" {
		query = query.Where("listings.transfer_types @> ?", pq.StringArray{string(filter.TransferType)})
	}
	if filter.DeliveryMethod != "" {
		query = query.Where("listings.delivery_methods @> ?", pq.StringArray{string(filter.DeliveryMethod)})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(books.title ILIKE ? OR books.author ILIKE ?)", pattern, pattern)
	}

	var listingMs []*model.ListingModel
	if err := query.Order("listings.created_at DESC").Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active listings")
	}

	listings := make([]*entity.Listing, 0, len(listingMs))
	for _, listingM := range listingMs {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListing
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookCopyNotFound.WrapMessage("referenced book copy does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// Update modifies an existing listing record.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Save(listingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update listing")
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// SoftDelete marks the listing deleted without removing the row.
func (repo *listingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	transferTypes := make([]entity.TransferType, 0, len(data.TransferTypes))
	for _, t := range data.TransferTypes {
		transferTypes = append(transferTypes, entity.TransferType(t))
	}

	deliveryMethods := make([]entity.DeliveryMethod, 0, len(data.DeliveryMethods))
	for _, d := range data.DeliveryMethods {
		deliveryMethods = append(deliveryMethods, entity.DeliveryMethod(d))
	}

	return &entity.Listing{
		ID:              data.ID,
		BookCopyID:      data.BookCopyID,
		UserID:          data.UserID,
		Slug:            data.Slug,
		Description:     data.Description,
		Photos:          []string(data.Photos),
		TransferTypes:   transferTypes,
		DeliveryMethods: deliveryMethods,
		PickupLocation:  data.PickupLocation,
		Status:          entity.ListingStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		BookCopy:        toBookCopyDomain(data.BookCopy),
		User:            toUserDomain(data.User),
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	transferTypes := make(pq.StringArray, 0, len(data.TransferTypes))
	for _, t := range data.TransferTypes {
		transferTypes = append(transferTypes, string(t))
	}

	deliveryMethods := make(pq.StringArray, 0, len(data.DeliveryMethods))
	for _, d := range data.DeliveryMethods {
		deliveryMethods = append(deliveryMethods, string(d))
	}

	return &model.ListingModel{
		ID:              data.ID,
		BookCopyID:      data.BookCopyID,
		UserID:          data.UserID,
		Slug:            data.Slug,
		Description:     data.Description,
		Photos:          pq.StringArray(data.Photos),
		TransferTypes:   transferTypes,
		DeliveryMethods: deliveryMethods,
		PickupLocation:  data.PickupLocation,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}
