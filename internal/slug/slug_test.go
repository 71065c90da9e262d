package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Kobzar", "kobzar"},
		{"spaces become hyphens", "The Master and Margarita", "the-master-and-margarita"},
		{"non-word chars stripped", "Harry Potter & the Philosopher's Stone!", "harry-potter-the-philosophers-stone"},
		{"repeated separators collapse", "a  --  b", "a-b"},
		{"leading and trailing trimmed", "  -1984-  ", "1984"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestForListing(t *testing.T) {
	got := ForListing("1984", "George Orwell", "clh456def")
	assert.Equal(t, "1984-george-orwell-lh456def", got)

	// Deterministic under re-invocation with identical inputs.
	assert.Equal(t, got, ForListing("1984", "George Orwell", "clh456def"))
}

func TestForListing_ShortID(t *testing.T) {
	assert.Equal(t, "kobzar-taras-shevchenko-abc", ForListing("Kobzar", "Taras Shevchenko", "abc"))
}

func TestForListing_EmptyTitleAuthor(t *testing.T) {
	// Falls back to the ID suffix alone rather than a leading hyphen.
	assert.Equal(t, "12345678", ForListing("", "", "xy12345678"))
}

func TestForListing_SuffixIsLastEight(t *testing.T) {
	id := "018f6f39-9f2e-7d30-bb1c-5a6e2c9d4f11"
	got := ForListing("Kobzar", "Taras Shevchenko", id)
	assert.Equal(t, id[len(id)-8:], got[len(got)-8:])
}
