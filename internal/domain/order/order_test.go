package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidShippingStatus(t *testing.T) {
	assert.True(t, ValidShippingStatus(ShippingReceived))
	assert.True(t, ValidShippingStatus(ShippingReadyForShipping))
	assert.True(t, ValidShippingStatus(ShippingOutForDelivery))

	assert.False(t, ValidShippingStatus("delivered"))
	assert.False(t, ValidShippingStatus(""))
	assert.False(t, ValidShippingStatus("Received"))
}
