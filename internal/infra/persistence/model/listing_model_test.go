package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The uniqueness of book_copy_id and slug must only apply to live rows:
// soft-deleted listings keep their row, and a full unique index would block
// re-listing a copy after its listing was deleted. AutoMigrate builds the
// schema straight from these tags, so the WHERE scope has to live here.
func TestListingModelUniqueIndexesAreScopedToLiveRows(t *testing.T) {
	t.Parallel()

	listingType := reflect.TypeOf(ListingModel{})

	tests := []struct {
		fieldName string
		indexName string
	}{
		{fieldName: "BookCopyID", indexName: "idx_listings_book_copy"},
		{fieldName: "Slug", indexName: "idx_listings_slug"},
	}

	for _, tt := range tests {
		t.Run(tt.fieldName, func(t *testing.T) {
			t.Parallel()

			field, ok := listingType.FieldByName(tt.fieldName)
			require.True(t, ok)

			gormTag := field.Tag.Get("gorm")
			assert.Contains(t, gormTag, "uniqueIndex:"+tt.indexName)
			assert.Contains(t, gormTag, "where:deleted_at IS NULL")
		})
	}
}

func TestBookModelISBNIndexIsScopedToLiveRows(t *testing.T) {
	t.Parallel()

	field, ok := reflect.TypeOf(BookModel{}).FieldByName("ISBN")
	require.True(t, ok)

	gormTag := field.Tag.Get("gorm")
	assert.Contains(t, gormTag, "uniqueIndex:idx_books_isbn")
	assert.Contains(t, gormTag, "where:deleted_at IS NULL")
}
