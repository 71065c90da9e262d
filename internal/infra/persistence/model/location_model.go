package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel mirrors the 'user_locations' table.
type UserLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Street     string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Country    string    `gorm:"type:varchar(100);not null"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
