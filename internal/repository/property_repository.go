package repository

import (
	"context"
	"errors"

	"apexrenting/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(property *entities.Property) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO properties (id, name, address) VALUES ($1, $2, $3)",
		property.ID, property.Name, property.Address)
	return err
}

func (r *PropertyRepository) Update(id, name, address string) error {
	_, err := r.db.Exec(context.Background(),
		"UPDATE properties SET name = $2, address = $3 WHERE id = $1",
		id, name, address)
	return err
}

// Delete removes a property; assignments and invoices go with it via
// ON DELETE CASCADE.
func (r *PropertyRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM properties WHERE id = $1", id)
	return err
}

func (r *PropertyRepository) GetByID(id string) (*entities.Property, error) {
	var p entities.Property
	err := r.db.QueryRow(context.Background(),
		"SELECT id, name, COALESCE(address, ''), created_at FROM properties WHERE id = $1", id).
		Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll returns every property ordered by name, the order the dashboard
// uses to auto-select the first entry.
func (r *PropertyRepository) GetAll() ([]entities.Property, error) {
	return r.queryProperties(
		"SELECT id, name, COALESCE(address, ''), created_at FROM properties ORDER BY name")
}

// GetAssigned returns the properties visible to one user through
// user_properties, ordered by name.
func (r *PropertyRepository) GetAssigned(userID string) ([]entities.Property, error) {
	return r.queryProperties(`
		SELECT p.id, p.name, COALESCE(p.address, ''), p.created_at
		FROM properties p
		JOIN user_properties up ON up.property_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.name
	`, userID)
}

func (r *PropertyRepository) queryProperties(query string, args ...any) ([]entities.Property, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []entities.Property{}
	for rows.Next() {
		var p entities.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM properties").Scan(&count)
	return count, err
}
