package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userCols = `id, name, email, password_hash, role, category, image_url, created_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Category, &u.ImageURL, &u.CreatedAt)
	return u, err
}

func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash, role string, category, imageURL *string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, category, image_url)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+userCols+`
	`, name, email, passwordHash, role, category, imageURL))
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *UserRepo) ListByRole(ctx context.Context, role string, category *string) ([]user.User, error) {
	q := `SELECT ` + userCols + ` FROM users WHERE role=$1`
	args := []any{role}
	if category != nil && *category != "" {
		q += ` AND category=$2`
		args = append(args, *category)
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateProfile patches name and, for vendors, category. Nil fields are
// left untouched. Scoped by role so admin user/vendor management cannot
// cross over.
func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, role string, name, category *string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = COALESCE($3, name),
		    category = COALESCE($4, category)
		WHERE id=$1 AND role=$2
	`, id, role, name, category)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64, role string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1 AND role=$2`, id, role)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
