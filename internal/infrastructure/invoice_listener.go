package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceListener holds one dedicated connection on LISTEN invoice_changes
// and forwards each notification's payload (the property id) into the hub.
// Invoices are written by external processes, so the database trigger is
// the only place changes are guaranteed to be seen.
type InvoiceListener struct {
	pool *pgxpool.Pool
	hub  *InvoiceHub
}

func NewInvoiceListener(pool *pgxpool.Pool, hub *InvoiceHub) *InvoiceListener {
	return &InvoiceListener{pool: pool, hub: hub}
}

// Run blocks until ctx is cancelled, re-acquiring the listen connection
// if it drops. Intended to be started in its own goroutine.
func (l *InvoiceListener) Run(ctx context.Context) {
	for ctx.Err() == nil {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			log.Printf("invoice listener: %v (reconnecting)", err)
			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
			}
		}
	}
}

func (l *InvoiceListener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN invoice_changes"); err != nil {
		return fmt.Errorf("listen invoice_changes: %w", err)
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.hub.Notify(notification.Payload)
	}
}
