package memberships

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventmart/internal/domain/membership"
)

var (
	ErrNotFound        = errors.New("membership not found")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrCancelled       = errors.New("cannot extend a cancelled membership")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// endDateFor maps a duration tag to the membership expiry from start.
func endDateFor(duration string, start time.Time) (time.Time, error) {
	switch duration {
	case membership.DurationSixMonths:
		return start.AddDate(0, 6, 0), nil
	case membership.DurationOneYear:
		return start.AddDate(1, 0, 0), nil
	case membership.DurationTwoYears:
		return start.AddDate(2, 0, 0), nil
	}
	return time.Time{}, ErrInvalidDuration
}

func (r *Repo) Create(ctx context.Context, userID int64, duration string) (membership.Membership, error) {
	start := time.Now()
	end, err := endDateFor(duration, start)
	if err != nil {
		return membership.Membership{}, err
	}

	var m membership.Membership
	err = r.db.QueryRow(ctx, `
		INSERT INTO memberships (user_id, duration, start_date, end_date, status)
		VALUES ($1,$2,$3,$4,'active')
		RETURNING id, user_id, duration, start_date, end_date, status
	`, userID, duration, start, end).Scan(&m.ID, &m.UserID, &m.Duration, &m.StartDate, &m.EndDate, &m.Status)
	return m, err
}

// Extend pushes the end date out by whole months. Cancelled
// memberships stay cancelled.
func (r *Repo) Extend(ctx context.Context, id int64, months int) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM memberships WHERE id=$1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if status == membership.StatusCancelled {
		return ErrCancelled
	}

	_, err = r.db.Exec(ctx, `
		UPDATE memberships SET end_date = end_date + ($2 * INTERVAL '1 month') WHERE id=$1
	`, id, months)
	return err
}

func (r *Repo) Cancel(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `UPDATE memberships SET status='cancelled' WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll joins each membership with its user's display name.
func (r *Repo) ListAll(ctx context.Context) ([]membership.Membership, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.user_id, COALESCE(u.name, 'Unknown'), m.duration, m.start_date, m.end_date, m.status
		FROM memberships m
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []membership.Membership{}
	for rows.Next() {
		var m membership.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.UserName, &m.Duration, &m.StartDate, &m.EndDate, &m.Status); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
