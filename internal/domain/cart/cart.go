package cart

type Cart struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Items      []CartItem `json:"items"`
	GrandTotal float64    `json:"grand_total"`
}

type CartItem struct {
	ID          int64   `json:"cart_item_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ItemTotal   float64 `json:"item_total"`
}
