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
	"gorm.io/gorm/clause"
)

// balanceRepository implements the domain.BalanceRepository interface using GORM.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository is the constructor for balanceRepository.
func NewBalanceRepository(db *gorm.DB) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

// FindByUser retrieves the user's balance.
func (repo *balanceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserBalance, error) {
	var balanceM model.UserBalanceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&balanceM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBalanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find balance")
	}

	return toBalanceDomain(&balanceM), nil
}

// EnsureExists creates a zero balance for the user if one does not exist yet
// and returns the current balance either way. The upsert makes concurrent
// first-book additions race-safe.
func (repo *balanceRepository) EnsureExists(ctx context.Context, userID uuid.UUID) (*entity.UserBalance, error) {
	balanceM := model.UserBalanceModel{UserID: userID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&balanceM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure balance exists")
	}

	return repo.FindByUser(ctx, userID)
}

// Credit atomically adds amount to the user's balance and appends a ledger
// entry describing the change.
func (repo *balanceRepository) Credit(ctx context.Context, userID uuid.UUID, amount int, txType entity.TransactionType, description string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserBalanceModel{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBalanceNotFound
	}

	entry := model.BalanceTransactionModel{
		UserID:      userID,
		Amount:      amount,
		Type:        string(txType),
		Description: description,
	}
	if err := repo.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record balance transaction")
	}

	return nil
}

// ListTransactions retrieves the user's ledger entries newest first.
func (repo *balanceRepository) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceTransaction, error) {
	var entryMs []*model.BalanceTransactionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list balance transactions")
	}

	entries := make([]*entity.BalanceTransaction, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toBalanceTransactionDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toBalanceDomain converts a GORM UserBalanceModel to a domain UserBalance entity.
func toBalanceDomain(data *model.UserBalanceModel) *entity.UserBalance {
	if data == nil {
		return nil
	}

	return &entity.UserBalance{
		UserID:    data.UserID,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toBalanceTransactionDomain converts a GORM BalanceTransactionModel to a
// domain BalanceTransaction entity.
func toBalanceTransactionDomain(data *model.BalanceTransactionModel) *entity.BalanceTransaction {
	if data == nil {
		return nil
	}

	return &entity.BalanceTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Amount:      data.Amount,
		Type:        entity.TransactionType(data.Type),
		TransferID:  data.TransferID,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
