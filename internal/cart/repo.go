package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/cart"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("item not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Carts are created lazily on first touch, one per user.
func (r *Repo) getOrCreateCartID(ctx context.Context, userID int64) (int64, error) {
	var cartID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id
	`, userID).Scan(&cartID)
	return cartID, err
}

// AddItem upserts a cart line; an existing line's quantity accumulates.
// The referenced product must exist.
func (r *Repo) AddItem(ctx context.Context, userID, productID int64, qty int) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id=$1)`, productID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}

	cartID, err := r.getOrCreateCartID(ctx, userID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1,$2,$3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, productID, qty)
	return err
}

// UpdateQty sets a line's quantity; zero or negative deletes the line.
func (r *Repo) UpdateQty(ctx context.Context, userID, itemID int64, qty int) error {
	var cartID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM carts WHERE user_id=$1`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	if qty <= 0 {
		ct, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1 AND cart_id=$2`, itemID, cartID)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return ErrItemNotFound
		}
		return nil
	}

	ct, err := r.db.Exec(ctx, `UPDATE cart_items SET quantity=$3 WHERE id=$1 AND cart_id=$2`, itemID, cartID, qty)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *Repo) RemoveItem(ctx context.Context, userID, itemID int64) error {
	var cartID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM carts WHERE user_id=$1`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1 AND cart_id=$2`, itemID, cartID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// GetCart returns the cart with lines joined against live product
// name and price, plus per-line and grand totals.
func (r *Repo) GetCart(ctx context.Context, userID int64) (cart.Cart, error) {
	out := cart.Cart{UserID: userID, Items: []cart.CartItem{}}

	err := r.db.QueryRow(ctx, `SELECT id FROM carts WHERE user_id=$1`, userID).Scan(&out.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, nil
	}
	if err != nil {
		return cart.Cart{}, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.product_id, ci.quantity, p.name, p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`, out.ID)
	if err != nil {
		return cart.Cart{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it cart.CartItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.ProductName, &it.Price); err != nil {
			return cart.Cart{}, err
		}
		it.ItemTotal = it.Price * float64(it.Quantity)
		out.GrandTotal += it.ItemTotal
		out.Items = append(out.Items, it)
	}
	return out, rows.Err()
}
