package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBalanceModel mirrors the 'user_balances' table, one row per user.
type UserBalanceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance   int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBalanceModel) TableName() string {
	return "user_balances"
}

// BalanceTransactionModel mirrors the 'balance_transactions' table. Rows are
// append-only; there is no UpdatedAt on purpose.
type BalanceTransactionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount      int        `gorm:"not null"`
	Type        string     `gorm:"type:varchar(30);not null"`
	TransferID  *uuid.UUID `gorm:"type:uuid"`
	Description string     `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BalanceTransactionModel) TableName() string {
	return "balance_transactions"
}
