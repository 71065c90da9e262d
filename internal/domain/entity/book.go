// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Condition represents the physical condition of a book copy.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionLikeNew Condition = "LIKE_NEW"
	ConditionGood    Condition = "GOOD"
	ConditionFair    Condition = "FAIR"
	ConditionPoor    Condition = "POOR"
)

// String returns the string representation of the Condition.
func (c Condition) String() string {
	return string(c)
}

// IsValid checks if the Condition is a valid value.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// Book is a canonical catalog entry shared by every physical copy of the same
// title. Identity is deduplicated by ISBN first, then by case-insensitive
// (title, author) among non-deleted books.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	ISBN            string // Optional; unique among non-empty values.
	Genre           string
	PublicationYear *int
	Description     string
	CoverImage      string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Copies []*BookCopy // Non-deleted copies, populated on detail reads.
}

// BookCopy is a specific physical instance of a Book owned by a User.
type BookCopy struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	OwnerID     uuid.UUID
	Condition   Condition
	Notes       string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Book    *Book    // Populated on reads that join the catalog entry.
	Owner   *User    // Populated on reads that join the owning user.
	Listing *Listing // The copy's non-deleted listing, if one exists.
}
