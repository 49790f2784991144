package repository

import (
	"context"

	"apexrenting/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(msg *entities.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO contact_messages (id, name, email, message) VALUES ($1, $2, $3, $4)",
		msg.ID, msg.Name, msg.Email, msg.Message)
	return err
}

// GetAll returns submissions newest first for the admin inbox.
func (r *ContactRepository) GetAll() ([]entities.ContactMessage, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entities.ContactMessage{}
	for rows.Next() {
		var m entities.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
