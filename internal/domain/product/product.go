package product

import "time"

const (
	StatusAvailable  = "available"
	StatusOutOfStock = "out_of_stock"
)

func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusOutOfStock
}

type Product struct {
	ID          int64     `json:"id"`
	VendorID    int64     `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
