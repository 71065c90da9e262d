// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferType represents a way a listing's book copy can change hands.
type TransferType string

const (
	TransferTypeFree         TransferType = "FREE"
	TransferTypeForKolocoins TransferType = "FOR_KOLOCOINS"
	TransferTypeTrade        TransferType = "TRADE"
	TransferTypeLoan         TransferType = "LOAN"
)

// IsValid checks if the TransferType is a valid value.
func (t TransferType) IsValid() bool {
	switch t {
	case TransferTypeFree, TransferTypeForKolocoins, TransferTypeTrade, TransferTypeLoan:
		return true
	default:
		return false
	}
}

// DeliveryMethod represents a way a listing's book copy can be delivered.
type DeliveryMethod string

const (
	DeliverySelfPickup DeliveryMethod = "SELF_PICKUP"
	DeliveryNovaPoshta DeliveryMethod = "NOVA_POSHTA"
	DeliveryUkrposhta  DeliveryMethod = "UKRPOSHTA"
)

// IsValid checks if the DeliveryMethod is a valid value.
func (d DeliveryMethod) IsValid() bool {
	switch d {
	case DeliverySelfPickup, DeliveryNovaPoshta, DeliveryUkrposhta:
		return true
	default:
		return false
	}
}

// ListingStatus represents the lifecycle state of a listing.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "ACTIVE"
	ListingStatusInactive  ListingStatus = "INACTIVE"
	ListingStatusCompleted ListingStatus = "COMPLETED"
)

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive, ListingStatusCompleted:
		return true
	default:
		return false
	}
}

// Listing is a public offer to transfer one BookCopy. A copy has at most one
// non-deleted listing, enforced by a unique constraint at the data layer.
type Listing struct {
	ID              uuid.UUID
	BookCopyID      uuid.UUID
	UserID          uuid.UUID
	Slug            string // Unique human-readable identifier derived from title, author and copy ID.
	Description     string
	Photos          []string // Ordered photo URIs.
	TransferTypes   []TransferType
	DeliveryMethods []DeliveryMethod
	PickupLocation  string // Required when SELF_PICKUP is among the delivery methods.
	Status          ListingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	BookCopy *BookCopy // Populated on reads that join the copy and its book.
	User     *User     // Populated on reads that join the listing owner.
}

// HasDeliveryMethod reports whether the listing offers the given delivery method.
func (l *Listing) HasDeliveryMethod(method DeliveryMethod) bool {
	for _, m := range l.DeliveryMethods {
		if m == method {
			return true
		}
	}

	return false
}
