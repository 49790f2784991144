package repository

import (
	"context"

	"apexrenting/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// GetByProperty returns a property's invoices newest first. The amount is
// selected as text so the decimal survives the trip untouched; callers
// coerce before summation.
func (r *InvoiceRepository) GetByProperty(propertyID string) ([]entities.Invoice, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, property_id, amount::text, COALESCE(category, ''),
		       COALESCE(vendor, ''), to_char(invoice_date, 'YYYY-MM-DD')
		FROM invoices
		WHERE property_id = $1
		ORDER BY invoice_date DESC
	`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []entities.Invoice{}
	for rows.Next() {
		var inv entities.Invoice
		if err := rows.Scan(&inv.ID, &inv.PropertyID, &inv.Amount,
			&inv.Category, &inv.Vendor, &inv.InvoiceDate); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM invoices").Scan(&count)
	return count, err
}
