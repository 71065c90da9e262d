// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareReward is the number of Kolocoins credited when a member shares a book
// by publishing a listing.
const ShareReward = 1

// TransactionType classifies an entry in the Kolocoin ledger.
type TransactionType string

const (
	// TransactionTypeShareReward is the credit earned for publishing a listing.
	TransactionTypeShareReward TransactionType = "SHARE_REWARD"
	// TransactionTypeTransferDebit is the debit for acquiring a book via FOR_KOLOCOINS.
	TransactionTypeTransferDebit TransactionType = "TRANSFER_DEBIT"
	// TransactionTypeTransferCredit is the credit for handing over a book via FOR_KOLOCOINS.
	TransactionTypeTransferCredit TransactionType = "TRANSFER_CREDIT"
)

// UserBalance is the one-to-one Kolocoin balance of a user. It is initialized
// to zero when the user adds their first book and must exist before any
// ledger entry references the user.
type UserBalance struct {
	UserID    uuid.UUID
	Balance   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BalanceTransaction is an immutable, append-only Kolocoin ledger entry.
type BalanceTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int // Signed; positive credits, negative debits.
	Type        TransactionType
	TransferID  *uuid.UUID // Optional link to the BookTransfer that caused the entry.
	Description string
	CreatedAt   time.Time
}
