package entities

import "time"

type Property struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProperty links a client profile to a property it may see.
// Unique per (user_id, property_id); rows vanish when either side is deleted.
type UserProperty struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Assignment is a UserProperty joined with its profile and property,
// the shape the admin panel lists.
type Assignment struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	PropertyID   string `json:"property_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name,omitempty"`
	PropertyName string `json:"property_name"`
	Address      string `json:"address,omitempty"`
}
