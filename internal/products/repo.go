package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/product"
)

var ErrProductNotFound = errors.New("product not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const productCols = `id, vendor_id, name, description, price, stock, status, image_url, created_at`

func scanProduct(row interface{ Scan(...any) error }) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Status, &p.ImageURL, &p.CreatedAt)
	return p, err
}

type CreateInput struct {
	VendorID    int64
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    *string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (product.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, `
		INSERT INTO products (vendor_id, name, description, price, stock, status, image_url)
		VALUES ($1,$2,$3,$4,$5,'available',$6)
		RETURNING `+productCols+`
	`, in.VendorID, in.Name, in.Description, in.Price, in.Stock, in.ImageURL))
}

func (r *Repo) ListByVendor(ctx context.Context, vendorID int64) ([]product.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productCols+` FROM products WHERE vendor_id=$1 ORDER BY created_at DESC
	`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Patch carries the optional fields of a vendor product update. Nil
// fields are left as-is.
type Patch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Status      *string  `json:"status"`
	ImageURL    *string  `json:"image_url"`
}

func (r *Repo) Update(ctx context.Context, id, vendorID int64, p Patch) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    price = COALESCE($5, price),
		    stock = COALESCE($6, stock),
		    status = COALESCE($7, status),
		    image_url = COALESCE($8, image_url)
		WHERE id=$1 AND vendor_id=$2
	`, id, vendorID, p.Name, p.Description, p.Price, p.Stock, p.Status, p.ImageURL)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, vendorID int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1 AND vendor_id=$2`, id, vendorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ToggleStatus flips availability and returns the new status.
func (r *Repo) ToggleStatus(ctx context.Context, id, vendorID int64) (string, error) {
	var status string
	err := r.db.QueryRow(ctx, `
		UPDATE products
		SET status = CASE WHEN status='available' THEN 'out_of_stock' ELSE 'available' END
		WHERE id=$1 AND vendor_id=$2
		RETURNING status
	`, id, vendorID).Scan(&status)
	if err != nil {
		return "", ErrProductNotFound
	}
	return status, nil
}

// ListAvailable serves shopper browsing: available products only,
// optionally narrowed to one vendor or one vendor category.
func (r *Repo) ListAvailable(ctx context.Context, vendorID *int64, category *string) ([]product.Product, error) {
	q := `
		SELECT p.id, p.vendor_id, p.name, p.description, p.price, p.stock, p.status, p.image_url, p.created_at
		FROM products p
	`
	args := []any{}
	if category != nil && *category != "" {
		q += ` JOIN users v ON v.id = p.vendor_id AND v.category = $1`
		args = append(args, *category)
	}
	q += ` WHERE p.status = 'available'`
	if vendorID != nil {
		args = append(args, *vendorID)
		q += fmt.Sprintf(` AND p.vendor_id = $%d`, len(args))
	}
	q += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]product.Product, error) {
	var out []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
