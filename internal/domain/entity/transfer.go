// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus represents the lifecycle state of a book transfer request.
// Only the data model and read-side queries exist today; transition rules
// (who may agree, when balances move, rollback on cancellation) are an open
// product question and are deliberately not implemented.
type TransferStatus string

const (
	TransferStatusRequested TransferStatus = "REQUESTED"
	TransferStatusAgreed    TransferStatus = "AGREED"
	TransferStatusInTransit TransferStatus = "IN_TRANSIT"
	TransferStatusDelivered TransferStatus = "DELIVERED"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

// IsValid checks if the TransferStatus is a valid value.
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusRequested, TransferStatusAgreed, TransferStatusInTransit,
		TransferStatusDelivered, TransferStatusCancelled:
		return true
	default:
		return false
	}
}

// BookTransfer is a requested exchange of a specific listing between a
// requester and the listing owner.
type BookTransfer struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	RequesterID    uuid.UUID
	OwnerID        uuid.UUID
	TransferType   TransferType
	DeliveryMethod DeliveryMethod
	Status         TransferStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Listing   *Listing // Populated on reads that join the listing.
	Requester *User
	Owner     *User
}
