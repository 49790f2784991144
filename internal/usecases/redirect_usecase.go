package usecases

import (
	"errors"
	"strings"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"
)

var (
	ErrEmptyRedirectURL     = errors.New("redirect URL must not be empty")
	ErrBadRedirectType      = errors.New("redirect type must be lease or report")
	ErrRedirectUserNotFound = errors.New("user not found with that email address")
)

// RedirectRegistry manages the per-user, per-purpose external URLs the
// client dashboard opens (lease signing, reporting tools).
type RedirectRegistry struct {
	redirects interfaces.RedirectStore
	profiles  interfaces.ProfileStore
}

func NewRedirectRegistry(redirects interfaces.RedirectStore, profiles interfaces.ProfileStore) *RedirectRegistry {
	return &RedirectRegistry{
		redirects: redirects,
		profiles:  profiles,
	}
}

// Set resolves the email to exactly one profile and upserts the URL for
// (user, type). Re-running with the same arguments leaves one row with the
// latest URL.
func (rr *RedirectRegistry) Set(email, redirectType, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyRedirectURL
	}
	if redirectType != entities.RedirectLease && redirectType != entities.RedirectReport {
		return ErrBadRedirectType
	}

	profile, err := rr.profiles.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrRedirectUserNotFound
	}

	return rr.redirects.Upsert(profile.ID, redirectType, url)
}

// Get returns the configured URLs for a user; unset purposes stay empty.
func (rr *RedirectRegistry) Get(userID string) (*entities.RedirectSet, error) {
	return rr.redirects.GetForUser(userID)
}

func (rr *RedirectRegistry) Delete(id string) error {
	return rr.redirects.Delete(id)
}

// List returns all redirects, optionally narrowed by a case-insensitive
// email substring.
func (rr *RedirectRegistry) List(emailFilter string) ([]entities.RedirectListing, error) {
	listings, err := rr.redirects.GetAll()
	if err != nil {
		return nil, err
	}
	if emailFilter == "" {
		return listings, nil
	}

	needle := strings.ToLower(emailFilter)
	filtered := []entities.RedirectListing{}
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Email), needle) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}
