package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kolotebe/internal/delivery/context"
	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/domain/service"
	"kolotebe/internal/slug"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing verifies copy ownership, validates the offer, generates the
// slug, publishes the listing as ACTIVE and credits the share reward. All
// writes run in one transaction; a duplicate listing rolls everything back.
func (srv *listingService) CreateListing(ctx context.Context, input *usecase.CreateListingInput) (*entity.Listing, error) {
	if err := validateListingOffer(input.TransferTypes, input.DeliveryMethods, input.PickupLocation); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating listing",
		slog.Any("bookCopyID", input.BookCopyID),
		slog.Any("userID", input.UserID))

	var createdListing *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		copyRepo := repoFactory.BookCopyRepo()
		listingRepo := repoFactory.ListingRepo()
		balanceRepo := repoFactory.BalanceRepo()

		// Ownership scope doubles as existence check: a copy owned by
		// someone else yields the same not-found error.
		bookCopy, err := copyRepo.FindByIDAndOwner(ctx, input.BookCopyID, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrBookCopyNotFound) {
				return errors.Wrap(domainerrors.ErrBookCopyNotFound, "listing creation failed")
			}

			return errors.Wrap(err, "failed to load book copy")
		}

		if _, err := listingRepo.FindByBookCopy(ctx, input.BookCopyID); err == nil {
			return domainerrors.ErrListingAlreadyExists
		} else if !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to check existing listing")
		}

		var title, author string
		if bookCopy.Book != nil {
			title, author = bookCopy.Book.Title, bookCopy.Book.Author
		}

		newListing := &entity.Listing{
			BookCopyID:      input.BookCopyID,
			UserID:          input.UserID,
			Slug:            slug.ForListing(title, author, input.BookCopyID.String()),
			Description:     input.Description,
			Photos:          input.Photos,
			TransferTypes:   input.TransferTypes,
			DeliveryMethods: input.DeliveryMethods,
			PickupLocation:  input.PickupLocation,
			Status:          entity.ListingStatusActive,
		}

		if err := listingRepo.Create(ctx, newListing); err != nil {
			// The unique index on book_copy_id is the real duplicate guard;
			// the earlier lookup only catches the common case sooner.
			if errors.Is(err, repository.ErrDuplicateListing) {
				return domainerrors.ErrListingAlreadyExists
			}

			return errors.Wrap(err, "failed to create listing")
		}

		if _, err := balanceRepo.EnsureExists(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to ensure balance exists")
		}
		if err := balanceRepo.Credit(ctx, input.UserID, entity.ShareReward,
			entity.TransactionTypeShareReward, "Reward for sharing a book"); err != nil {
			return errors.Wrap(err, "failed to credit share reward")
		}

		createdListing = newListing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create listing",
			slog.Any("bookCopyID", input.BookCopyID),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Listing created",
		slog.Any("listingID", createdListing.ID),
		slog.String("slug", createdListing.Slug))

	return createdListing, nil
}

// validateListingOffer checks the transfer and delivery arrays and the
// pickup location constraint shared by create and update.
func validateListingOffer(transferTypes []entity.TransferType, deliveryMethods []entity.DeliveryMethod, pickupLocation string) error {
	if len(transferTypes) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one transfer type is required")
	}
	for _, t := range transferTypes {
		if !t.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid transfer type: " + string(t))
		}
	}

	if len(deliveryMethods) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one delivery method is required")
	}
	hasSelfPickup := false
	for _, d := range deliveryMethods {
		if !d.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid delivery method: " + string(d))
		}
		if d == entity.DeliverySelfPickup {
			hasSelfPickup = true
		}
	}

	if hasSelfPickup && strings.TrimSpace(pickupLocation) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("pickup location is required for self pickup")
	}

	return nil
}

// ListActive retrieves the active listing feed narrowed by the filter.
func (srv *listingService) ListActive(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.FindActive(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list active listings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list active listings")
	}

	return listings, nil
}

// GetListing retrieves a listing by ID with the caller's ownership flag.
func (srv *listingService) GetListing(ctx context.Context, id, viewerID uuid.UUID) (*usecase.ListingDetailOutput, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ListingDetailOutput{
		Listing: listing,
		IsOwner: viewerID != uuid.Nil && listing.UserID == viewerID,
	}, nil
}

// UpdateListing applies a partial update after checking ownership. Only
// non-nil fields replace the stored value.
func (srv *listingService) UpdateListing(ctx context.Context, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	var updatedListing *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := srv.loadOwnedListing(ctx, listingRepo, input.ListingID, input.UserID)
		if err != nil {
			return err
		}

		if input.Description != nil {
			listing.Description = *input.Description
		}
		if input.Photos != nil {
			listing.Photos = *input.Photos
		}
		if input.TransferTypes != nil {
			listing.TransferTypes = *input.TransferTypes
		}
		if input.DeliveryMethods != nil {
			listing.DeliveryMethods = *input.DeliveryMethods
		}
		if input.PickupLocation != nil {
			listing.PickupLocation = *input.PickupLocation
		}
		if input.Status != nil {
			if !input.Status.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("invalid listing status: " + string(*input.Status))
			}
			listing.Status = *input.Status
		}

		// Revalidate the whole offer so a partial update cannot leave the
		// listing in a state a create would have rejected.
		if err := validateListingOffer(listing.TransferTypes, listing.DeliveryMethods, listing.PickupLocation); err != nil {
			return err
		}

		if err := listingRepo.Update(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}

		updatedListing = listing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update listing", slog.Any("listingID", input.ListingID), slog.Any("error", err))

		return nil, err
	}

	return updatedListing, nil
}

// DeleteListing soft-deletes the listing after checking ownership.
func (srv *listingService) DeleteListing(ctx context.Context, userID, listingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		if _, err := srv.loadOwnedListing(ctx, listingRepo, listingID, userID); err != nil {
			return err
		}

		if err := listingRepo.SoftDelete(ctx, listingID); err != nil {
			return errors.Wrap(err, "failed to delete listing")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete listing", slog.Any("listingID", listingID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Listing deleted", slog.Any("listingID", listingID))

	return nil
}

// GenerateListingQR renders a PNG QR code pointing at the listing's public
// share URL.
func (srv *listingService) GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	pngBytes, err := srv.qrService.GenerateListingQR(listing.Slug)
	if err != nil {
		srv.log(ctx).Error("Failed to generate listing QR code", slog.Any("listingID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return pngBytes, nil
}

func (srv *listingService) findListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	return listing, nil
}

// loadOwnedListing loads a listing and enforces that the caller owns it.
// Ownership failures are 403, not 404: the listing is public either way.
func (srv *listingService) loadOwnedListing(ctx context.Context, listingRepo repository.ListingRepository, listingID, userID uuid.UUID) (*entity.Listing, error) {
	listing, err := listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	if listing.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrListingOwnershipViolation, "caller does not own the listing")
	}

	return listing, nil
}
