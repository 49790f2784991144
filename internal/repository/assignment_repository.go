package repository

import (
	"context"

	"apexrenting/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create links a user to a property. A second attempt for the same pair
// trips the unique constraint and returns ErrDuplicateAssignment.
func (r *AssignmentRepository) Create(userID, propertyID string) error {
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO user_properties (id, user_id, property_id) VALUES ($1, $2, $3)",
		uuid.NewString(), userID, propertyID)
	if isUniqueViolation(err) {
		return ErrDuplicateAssignment
	}
	return err
}

func (r *AssignmentRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM user_properties WHERE id = $1", id)
	return err
}

// GetAll lists assignments enriched with profile and property details,
// newest first.
func (r *AssignmentRepository) GetAll() ([]entities.Assignment, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT up.id, up.user_id, up.property_id,
		       pr.email, COALESCE(pr.full_name, ''),
		       p.name, COALESCE(p.address, '')
		FROM user_properties up
		JOIN profiles pr ON pr.id = up.user_id
		JOIN properties p ON p.id = up.property_id
		ORDER BY up.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []entities.Assignment{}
	for rows.Next() {
		var a entities.Assignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.PropertyID,
			&a.Email, &a.FullName, &a.PropertyName, &a.Address); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// IsAssigned reports whether the user may see the property.
func (r *AssignmentRepository) IsAssigned(userID, propertyID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM user_properties WHERE user_id = $1 AND property_id = $2)",
		userID, propertyID).Scan(&exists)
	return exists, err
}

func (r *AssignmentRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM user_properties").Scan(&count)
	return count, err
}
