package user

import "time"

const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleVendor = "vendor"
)

// Vendor categories accepted at signup and on admin updates.
var Categories = []string{"catering", "florist", "decoration", "lighting"}

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser || r == RoleVendor
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Category     *string   `json:"category,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
