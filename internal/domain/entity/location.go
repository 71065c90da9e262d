// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationType is a user-facing label for a saved address.
type LocationType string

const (
	LocationTypeHome  LocationType = "HOME"
	LocationTypeWork  LocationType = "WORK"
	LocationTypeOther LocationType = "OTHER"
)

// IsValid checks if the LocationType is a valid value.
func (t LocationType) IsValid() bool {
	switch t {
	case LocationTypeHome, LocationTypeWork, LocationTypeOther:
		return true
	default:
		return false
	}
}

// UserLocation is a saved delivery address belonging to a user. A user may
// mark at most one non-deleted location as default.
type UserLocation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       LocationType
	Street     string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
