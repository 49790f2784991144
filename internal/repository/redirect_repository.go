package repository

import (
	"context"

	"apexrenting/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RedirectRepository struct {
	db *pgxpool.Pool
}

func NewRedirectRepository(db *pgxpool.Pool) *RedirectRepository {
	return &RedirectRepository{db: db}
}

// Upsert writes a redirect URL for (user, type). A second write for the
// same pair overwrites the URL; the conflict target does the bookkeeping,
// not application logic.
func (r *RedirectRepository) Upsert(userID, redirectType, url string) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO user_redirects (id, user_id, redirect_type, redirect_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, redirect_type)
		DO UPDATE SET redirect_url = EXCLUDED.redirect_url
	`, uuid.NewString(), userID, redirectType, url)
	return err
}

func (r *RedirectRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM user_redirects WHERE id = $1", id)
	return err
}

// GetForUser collects a user's configured URLs keyed by purpose. Missing
// purposes stay empty; the dashboard disables those buttons.
func (r *RedirectRepository) GetForUser(userID string) (*entities.RedirectSet, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT redirect_type, redirect_url FROM user_redirects WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &entities.RedirectSet{}
	for rows.Next() {
		var redirectType, url string
		if err := rows.Scan(&redirectType, &url); err != nil {
			return nil, err
		}
		switch redirectType {
		case entities.RedirectLease:
			set.Lease = url
		case entities.RedirectReport:
			set.Report = url
		}
	}
	return set, rows.Err()
}

// GetAll lists every redirect joined with its profile, newest first.
func (r *RedirectRepository) GetAll() ([]entities.RedirectListing, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT ur.id, ur.user_id, ur.redirect_url, ur.redirect_type,
		       pr.email, COALESCE(pr.full_name, '')
		FROM user_redirects ur
		JOIN profiles pr ON pr.id = ur.user_id
		ORDER BY ur.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []entities.RedirectListing{}
	for rows.Next() {
		var l entities.RedirectListing
		if err := rows.Scan(&l.ID, &l.UserID, &l.RedirectURL, &l.RedirectType,
			&l.Email, &l.FullName); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
