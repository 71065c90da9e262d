package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table, the canonical catalog shared by all
// physical copies of the same title. Absent ISBNs are stored as NULL, which
// PostgreSQL excludes from the unique index, so uniqueness only applies to
// books that actually have one.
type BookModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null;index"`
	Author          string    `gorm:"type:varchar(255);not null;index"`
	ISBN            *string   `gorm:"type:varchar(20);uniqueIndex:idx_books_isbn,where:deleted_at IS NULL"`
	Genre           string    `gorm:"type:varchar(100)"`
	PublicationYear *int
	Description     string `gorm:"type:text"`
	CoverImage      string `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	Copies []*BookCopyModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BookCopyModel mirrors the 'book_copies' table. Each row is one physical
// copy of a catalog book owned by a user.
type BookCopyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Condition   string    `gorm:"type:varchar(20);not null"`
	Notes       string    `gorm:"type:text"`
	IsAvailable bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Book    *BookModel    `gorm:"foreignKey:BookID"`
	Owner   *UserModel    `gorm:"foreignKey:OwnerID"`
	Listing *ListingModel `gorm:"foreignKey:BookCopyID"`
}

// TableName explicitly sets the table name for GORM.
func (BookCopyModel) TableName() string {
	return "book_copies"
}
