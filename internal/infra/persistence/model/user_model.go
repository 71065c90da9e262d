package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100)"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	Role          string    `gorm:"type:varchar(20);not null;default:'USER'"`
	Bio           string    `gorm:"type:text"`
	Location      string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(30)"`
	PhoneVerified bool      `gorm:"not null;default:false"`
	Image         string    `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Copies    []*BookCopyModel     `gorm:"foreignKey:OwnerID"`
	Listings  []*ListingModel      `gorm:"foreignKey:UserID"`
	Balance   *UserBalanceModel    `gorm:"foreignKey:UserID"`
	Locations []*UserLocationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
