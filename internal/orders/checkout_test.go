package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndTotalEmptyCart(t *testing.T) {
	_, err := validateAndTotal(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestValidateAndTotalComputesLivePrices(t *testing.T) {
	lines := []checkoutLine{
		{ProductID: 1, Quantity: 2, Name: "Rose Bouquet", Price: 49.50, Stock: 10},
		{ProductID: 2, Quantity: 1, Name: "String Lights", Price: 125.00, Stock: 3},
	}

	total, err := validateAndTotal(lines)
	require.NoError(t, err)
	assert.InDelta(t, 2*49.50+125.00, total, 1e-9)
}

func TestValidateAndTotalStockBoundary(t *testing.T) {
	// Requesting exactly the remaining stock is allowed.
	lines := []checkoutLine{{ProductID: 1, Quantity: 5, Name: "Candles", Price: 3.00, Stock: 5}}
	total, err := validateAndTotal(lines)
	require.NoError(t, err)
	assert.InDelta(t, 15.00, total, 1e-9)
}

func TestValidateAndTotalInsufficientStock(t *testing.T) {
	lines := []checkoutLine{
		{ProductID: 1, Quantity: 1, Name: "Candles", Price: 3.00, Stock: 10},
		{ProductID: 2, Quantity: 4, Name: "Table Set", Price: 80.00, Stock: 3},
	}

	_, err := validateAndTotal(lines)
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Table Set", stockErr.Product)
	assert.Equal(t, 3, stockErr.Available)
	assert.Contains(t, stockErr.Error(), "Table Set")
	assert.Contains(t, stockErr.Error(), "Available: 3")
}

func TestValidateAndTotalOneBadLineRejectsAll(t *testing.T) {
	// Whatever precedes a failing line contributes nothing: the whole
	// checkout is rejected, not partially priced.
	lines := []checkoutLine{
		{ProductID: 1, Quantity: 2, Name: "A", Price: 10, Stock: 2},
		{ProductID: 2, Quantity: 2, Name: "B", Price: 10, Stock: 1},
		{ProductID: 3, Quantity: 2, Name: "C", Price: 10, Stock: 2},
	}

	total, err := validateAndTotal(lines)
	assert.Error(t, err)
	assert.Zero(t, total)
}
