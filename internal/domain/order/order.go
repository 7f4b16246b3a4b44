package order

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Per-item shipment stages. No ordering is enforced between them; a
// vendor may set any valid stage at any time.
const (
	ShippingReceived         = "received"
	ShippingReadyForShipping = "ready_for_shipping"
	ShippingOutForDelivery   = "out_for_delivery"
)

func ValidShippingStatus(s string) bool {
	switch s {
	case ShippingReceived, ShippingReadyForShipping, ShippingOutForDelivery:
		return true
	}
	return false
}

type Order struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	Phone         string    `json:"phone"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderItem struct {
	ID             int64   `json:"id"`
	OrderID        int64   `json:"order_id"`
	ProductID      int64   `json:"product_id"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	ShippingStatus string  `json:"shipping_status"`
}
