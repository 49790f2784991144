package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateAssignment signals the UNIQUE(user_id, property_id)
	// constraint; the same user/property pair was assigned twice.
	ErrDuplicateAssignment = errors.New("user is already assigned to this property")
)

// isUniqueViolation reports whether err is Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
