package repository

import (
	"context"
	"errors"

	"apexrenting/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoleRepository struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// IsAdmin checks for a (user_id, 'admin') row. No row means "not admin",
// never an error.
func (r *RoleRepository) IsAdmin(userID string) (bool, error) {
	var role string
	err := r.db.QueryRow(context.Background(),
		"SELECT role FROM user_roles WHERE user_id = $1 AND role = $2",
		userID, entities.RoleAdmin).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Grant inserts a role row; granting an already-held role is a no-op.
func (r *RoleRepository) Grant(userID, role string) error {
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, role)
	return err
}
