package entities

import "time"

// Redirect purposes. A user may have zero, one, or both configured.
const (
	RedirectLease  = "lease"
	RedirectReport = "report"
)

// UserRedirect maps a user and a purpose to an external URL, unique per
// (user_id, redirect_type); writes for an existing pair overwrite the URL.
type UserRedirect struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RedirectURL  string    `json:"redirect_url"`
	RedirectType string    `json:"redirect_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// RedirectListing is a UserRedirect joined with its profile, the shape the
// admin panel lists and filters by email.
type RedirectListing struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	RedirectURL  string `json:"redirect_url"`
	RedirectType string `json:"redirect_type"`
	Email        string `json:"email"`
	FullName     string `json:"full_name,omitempty"`
}

// RedirectSet is what a client dashboard needs: at most one URL per purpose.
// An unset purpose disables the corresponding action button.
type RedirectSet struct {
	Lease  string `json:"lease,omitempty"`
	Report string `json:"report,omitempty"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
