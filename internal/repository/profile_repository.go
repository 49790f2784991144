package repository

import (
	"context"
	"errors"

	"apexrenting/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(profile *entities.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO profiles (id, email, full_name, password_hash) VALUES ($1, $2, $3, $4)",
		profile.ID, profile.Email, profile.FullName, profile.PasswordHash)
	return err
}

func (r *ProfileRepository) GetByID(id string) (*entities.Profile, error) {
	return r.getOne("SELECT id, email, COALESCE(full_name, ''), password_hash, created_at FROM profiles WHERE id = $1", id)
}

// GetByEmail resolves an email to its profile. Nil without error when no
// profile matches; emails are unique so at most one row exists.
func (r *ProfileRepository) GetByEmail(email string) (*entities.Profile, error) {
	return r.getOne("SELECT id, email, COALESCE(full_name, ''), password_hash, created_at FROM profiles WHERE email = $1", email)
}

func (r *ProfileRepository) getOne(query, arg string) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.QueryRow(context.Background(), query, arg).
		Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.PasswordHash, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetAll() ([]entities.Profile, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT id, email, COALESCE(full_name, ''), created_at FROM profiles ORDER BY email")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []entities.Profile{}
	for rows.Next() {
		var p entities.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM profiles").Scan(&count)
	return count, err
}
