package main

import (
	"testing"

	"kolotebe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

// The seeded transfer and delivery options must be members of the enums the
// API validates against, otherwise seeded listings would be unservable.
func TestSeedListingOptionsAreValidEnumValues(t *testing.T) {
	t.Parallel()

	for _, transferType := range seedTransferTypes {
		assert.True(t, entity.TransferType(transferType).IsValid(), transferType)
	}

	for _, deliveryMethod := range seedDeliveryMethods {
		assert.True(t, entity.DeliveryMethod(deliveryMethod).IsValid(), deliveryMethod)
	}
}
