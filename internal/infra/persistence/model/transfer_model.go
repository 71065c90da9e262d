package model

import (
	"time"

	"github.com/google/uuid"
)

// BookTransferModel mirrors the 'book_transfers' table.
type BookTransferModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RequesterID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransferType   string    `gorm:"type:varchar(20);not null"`
	DeliveryMethod string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'REQUESTED'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Listing   *ListingModel `gorm:"foreignKey:ListingID"`
	Requester *UserModel    `gorm:"foreignKey:RequesterID"`
	Owner     *UserModel    `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (BookTransferModel) TableName() string {
	return "book_transfers"
}
