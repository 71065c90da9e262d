// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
)

// ErrBalanceNotFound is returned when a user has no Kolocoin balance row yet.
var ErrBalanceNotFound = errors.New("balance not found")

// BalanceRepository defines the interface for Kolocoin balance persistence.
// Ledger entries are append-only; the balance row is the running total.
type BalanceRepository interface {
	// FindByUser retrieves the user's balance.
	// Returns ErrBalanceNotFound if the user has none yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserBalance, error)

	// EnsureExists creates a zero balance for the user if one does not exist
	// yet and returns the current balance either way.
	EnsureExists(ctx context.Context, userID uuid.UUID) (*entity.UserBalance, error)

	// Credit atomically adds amount to the user's balance and appends a
	// ledger entry describing the change. The balance row must already exist.
	Credit(ctx context.Context, userID uuid.UUID, amount int, txType entity.TransactionType, description string) error

	// ListTransactions retrieves the user's ledger entries newest first.
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceTransaction, error)
}
