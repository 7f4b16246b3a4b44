package orders

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/order"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type CheckoutInput struct {
	Name          string
	Email         string
	Address       string
	City          string
	State         string
	Pincode       string
	Phone         string
	PaymentMethod string
}

// Checkout converts the user's cart into an order inside one
// transaction. Product rows backing the cart are locked up front, so
// concurrent checkouts against the same product serialize here; the
// guarded decrement below is the backstop that keeps stock from ever
// going negative. Any failure rolls the whole thing back.
func (r *Repo) Checkout(ctx context.Context, userID int64, in CheckoutInput) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cartID int64
	err = tx.QueryRow(ctx, `SELECT id FROM carts WHERE user_id=$1`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrEmptyCart
	}
	if err != nil {
		return 0, err
	}

	var lineCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items WHERE cart_id=$1`, cartID).Scan(&lineCount); err != nil {
		return 0, err
	}
	if lineCount == 0 {
		return 0, ErrEmptyCart
	}

	rows, err := tx.Query(ctx, `
		SELECT ci.product_id, ci.quantity, p.name, p.price, p.stock
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.product_id
		FOR UPDATE OF p
	`, cartID)
	if err != nil {
		return 0, err
	}

	var lines []checkoutLine
	for rows.Next() {
		var ln checkoutLine
		if err := rows.Scan(&ln.ProductID, &ln.Quantity, &ln.Name, &ln.Price, &ln.Stock); err != nil {
			rows.Close()
			return 0, err
		}
		lines = append(lines, ln)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	// A line whose product is gone drops out of the join: stale cart.
	if len(lines) != lineCount {
		return 0, ErrProductNotFound
	}

	total, err := validateAndTotal(lines)
	if err != nil {
		return 0, err
	}

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, total_amount, status, name, email, address, city, state, pincode, phone, payment_method)
		VALUES ($1,$2,'pending',$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, userID, total, in.Name, in.Email, in.Address, in.City, in.State, in.Pincode, in.Phone, in.PaymentMethod).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, ln := range lines {
		// Conditional decrement: refuses to drive stock negative even
		// if another transaction slipped a decrement in between.
		ct, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $2
			WHERE id = $1 AND stock >= $2
		`, ln.ProductID, ln.Quantity)
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			return 0, &InsufficientStockError{Product: ln.Name, Available: ln.Stock}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, shipping_status)
			VALUES ($1,$2,$3,$4,'received')
		`, orderID, ln.ProductID, ln.Quantity, ln.Price)
		if err != nil {
			return 0, err
		}
	}

	// Cart row survives, emptied.
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

type OrderItemView struct {
	ProductName    string  `json:"product_name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	ShippingStatus string  `json:"shipping_status"`
}

type OrderView struct {
	OrderID       int64           `json:"order_id"`
	TotalAmount   float64         `json:"total_amount"`
	OrderStatus   string          `json:"order_status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItemView `json:"items"`
}

// MyOrders returns the caller's orders with their item snapshots joined
// against product names.
func (r *Repo) MyOrders(ctx context.Context, userID int64) ([]OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.total_amount, o.status, o.payment_method, o.created_at,
		       COALESCE(p.name, ''), oi.quantity, oi.price, oi.shipping_status
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE o.user_id = $1
		ORDER BY o.id, oi.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []OrderView{}
	idx := map[int64]int{}
	for rows.Next() {
		var (
			ov OrderView
			it OrderItemView
		)
		if err := rows.Scan(&ov.OrderID, &ov.TotalAmount, &ov.OrderStatus, &ov.PaymentMethod, &ov.CreatedAt,
			&it.ProductName, &it.Quantity, &it.Price, &it.ShippingStatus); err != nil {
			return nil, err
		}
		i, ok := idx[ov.OrderID]
		if !ok {
			idx[ov.OrderID] = len(out)
			ov.Items = []OrderItemView{it}
			out = append(out, ov)
			continue
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out, rows.Err()
}

type VendorTransaction struct {
	OrderItemID int64 `json:"order_item_id"`
	OrderID     int64 `json:"order_id"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"payment_method"`

	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`

	ShippingStatus string    `json:"shipping_status"`
	OrderStatus    string    `json:"order_status"`
	OrderDate      time.Time `json:"order_date"`
}

// VendorTransactions lists every sold item backed by one of the
// vendor's products, with the order's contact fields alongside.
func (r *Repo) VendorTransactions(ctx context.Context, vendorID int64) ([]VendorTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, o.id,
		       o.name, o.email, o.phone, o.address, o.city, o.state, o.pincode, o.payment_method,
		       p.name, oi.quantity, oi.price,
		       oi.shipping_status, o.status, o.created_at
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE p.vendor_id = $1
		ORDER BY o.created_at DESC, oi.id
	`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VendorTransaction{}
	for rows.Next() {
		var t VendorTransaction
		if err := rows.Scan(&t.OrderItemID, &t.OrderID,
			&t.CustomerName, &t.CustomerEmail, &t.CustomerPhone, &t.Address, &t.City, &t.State, &t.Pincode, &t.PaymentMethod,
			&t.ProductName, &t.Quantity, &t.Price,
			&t.ShippingStatus, &t.OrderStatus, &t.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateShippingStatus moves an order item to a new shipment stage.
// Only the vendor owning the backing product may do so; statuses carry
// no ordering between them.
func (r *Repo) UpdateShippingStatus(ctx context.Context, orderItemID, vendorID int64, status string) error {
	if !order.ValidShippingStatus(status) {
		return ErrInvalidStatus
	}

	var productID int64
	err := r.db.QueryRow(ctx, `SELECT product_id FROM order_items WHERE id=$1`, orderItemID).Scan(&productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderItemNotFound
	}
	if err != nil {
		return err
	}

	var owned bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM products WHERE id=$1 AND vendor_id=$2)
	`, productID, vendorID).Scan(&owned)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotAuthorized
	}

	_, err = r.db.Exec(ctx, `UPDATE order_items SET shipping_status=$2 WHERE id=$1`, orderItemID, status)
	return err
}

// AllOrders is the unscoped admin view.
func (r *Repo) AllOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, total_amount, status, name, email, address, city, state, pincode, phone, payment_method, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []order.Order{}
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.Name, &o.Email, &o.Address,
			&o.City, &o.State, &o.Pincode, &o.Phone, &o.PaymentMethod, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type ReportRow struct {
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *Repo) TransactionReport(ctx context.Context) ([]ReportRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, total_amount, status, created_at FROM orders ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReportRow{}
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(&row.OrderID, &row.UserID, &row.TotalAmount, &row.Status, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

type SalesSummary struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

func (r *Repo) SalesSummary(ctx context.Context) (SalesSummary, error) {
	var s SalesSummary
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders
	`).Scan(&s.TotalOrders, &s.TotalRevenue)
	return s, err
}
