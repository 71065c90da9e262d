package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListingModel mirrors the 'listings' table. The unique index on BookCopyID
// enforces at most one listing per copy; soft-deleted listings keep their row,
// so both unique indexes are partial, scoped to deleted_at IS NULL. Without
// the WHERE clause a soft-deleted listing would block re-listing the same
// copy forever.
type ListingModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookCopyID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_listings_book_copy,where:deleted_at IS NULL"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Slug            string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_listings_slug,where:deleted_at IS NULL"`
	Description     string         `gorm:"type:text"`
	Photos          pq.StringArray `gorm:"type:text[]"`
	TransferTypes   pq.StringArray `gorm:"type:text[];not null"`
	DeliveryMethods pq.StringArray `gorm:"type:text[];not null"`
	PickupLocation  string         `gorm:"type:varchar(255)"`
	Status          string         `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	BookCopy *BookCopyModel `gorm:"foreignKey:BookCopyID"`
	User     *UserModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
