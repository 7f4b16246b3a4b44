package guests

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/guest"
)

var ErrNotFound = errors.New("guest not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, userID int64, name, contactNumber, email string) (guest.Guest, error) {
	var g guest.Guest
	err := r.db.QueryRow(ctx, `
		INSERT INTO guests (user_id, name, contact_number, email)
		VALUES ($1,$2,$3,$4)
		RETURNING id, user_id, name, contact_number, email
	`, userID, name, contactNumber, email).Scan(&g.ID, &g.UserID, &g.Name, &g.ContactNumber, &g.Email)
	return g, err
}

func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]guest.Guest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, contact_number, email
		FROM guests WHERE user_id=$1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []guest.Guest{}
	for rows.Next() {
		var g guest.Guest
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.ContactNumber, &g.Email); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Patch applies only the fields the caller set.
type Patch struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email" binding:"omitempty,email"`
}

func (r *Repo) Update(ctx context.Context, id, userID int64, p Patch) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE guests
		SET name = COALESCE($3, name),
		    contact_number = COALESCE($4, contact_number),
		    email = COALESCE($5, email)
		WHERE id=$1 AND user_id=$2
	`, id, userID, p.Name, p.ContactNumber, p.Email)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM guests WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
