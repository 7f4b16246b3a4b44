package orders

// checkoutLine is one cart line joined with the product row it
// references, read under lock inside the checkout transaction.
type checkoutLine struct {
	ProductID int64
	Quantity  int
	Name      string
	Price     float64
	Stock     int
}

// validateAndTotal checks every line against the stock snapshot before
// anything is written, and computes the order total from live prices.
// A single failing line rejects the whole checkout.
func validateAndTotal(lines []checkoutLine) (float64, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, ln := range lines {
		if ln.Stock < ln.Quantity {
			return 0, &InsufficientStockError{Product: ln.Name, Available: ln.Stock}
		}
		total += ln.Price * float64(ln.Quantity)
	}
	return total, nil
}
