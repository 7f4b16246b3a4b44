package membership

import "time"

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

const (
	DurationSixMonths = "6m"
	DurationOneYear   = "1y"
	DurationTwoYears  = "2y"
)

type Membership struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Duration  string    `json:"duration"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}
