package entities

import "time"

type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRole grants a capability by presence of a row. The only role the
// application checks for is "admin"; everything else is a standard client.
type UserRole struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

const RoleAdmin = "admin"
