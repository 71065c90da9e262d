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

// transferRepository implements the domain.TransferRepository interface using GORM.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository is the constructor for transferRepository.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

// FindIncoming retrieves transfers where the user is the listing owner, newest first.
func (repo *transferRepository) FindIncoming(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookTransfer, error) {
	return repo.findByColumn(ctx, "owner_id", ownerID)
}

// FindOutgoing retrieves transfers where the user is the requester, newest first.
func (repo *transferRepository) FindOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*entity.BookTransfer, error) {
	return repo.findByColumn(ctx, "requester_id", requesterID)
}

func (repo *transferRepository) findByColumn(ctx context.Context, column string, userID uuid.UUID) ([]*entity.BookTransfer, error) {
	var transferMs []*model.BookTransferModel
	err := repo.db.WithContext(ctx).
		Preload("Listing.BookCopy.Book").
		Preload("Requester").
		Preload("Owner").
		Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&transferMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transfers")
	}

	transfers := make([]*entity.BookTransfer, 0, len(transferMs))
	for _, transferM := range transferMs {
		transfers = append(transfers, toTransferDomain(transferM))
	}

	return transfers, nil
}

// Create persists a new transfer record.
func (repo *transferRepository) Create(ctx context.Context, transfer *entity.BookTransfer) error {
	transferM := fromTransferDomain(transfer)

	if err := repo.db.WithContext(ctx).Create(transferM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("referenced listing does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transfer")
	}

	transfer.ID = transferM.ID
	transfer.CreatedAt = transferM.CreatedAt
	transfer.UpdatedAt = transferM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toTransferDomain converts a GORM BookTransferModel to a domain BookTransfer entity.
func toTransferDomain(data *model.BookTransferModel) *entity.BookTransfer {
	if data == nil {
		return nil
	}

	return &entity.BookTransfer{
		ID:             data.ID,
		ListingID:      data.ListingID,
		RequesterID:    data.RequesterID,
		OwnerID:        data.OwnerID,
		TransferType:   entity.TransferType(data.TransferType),
		DeliveryMethod: entity.DeliveryMethod(data.DeliveryMethod),
		Status:         entity.TransferStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Listing:        toListingDomain(data.Listing),
		Requester:      toUserDomain(data.Requester),
		Owner:          toUserDomain(data.Owner),
	}
}

// fromTransferDomain converts a domain BookTransfer entity to a GORM BookTransferModel.
func fromTransferDomain(data *entity.BookTransfer) *model.BookTransferModel {
	if data == nil {
		return nil
	}

	return &model.BookTransferModel{
		ID:             data.ID,
		ListingID:      data.ListingID,
		RequesterID:    data.RequesterID,
		OwnerID:        data.OwnerID,
		TransferType:   string(data.TransferType),
		DeliveryMethod: string(data.DeliveryMethod),
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}
