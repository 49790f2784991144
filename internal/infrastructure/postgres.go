package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			full_name VARCHAR(255),
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}

	// Role membership by presence of a row. Rows are seeded externally
	// (or by the ensure-admin command); there is no elevation workflow.
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			role VARCHAR(20) NOT NULL,
			PRIMARY KEY (user_id, role)
		);
	`)
	if err != nil {
		return fmt.Errorf("create user_roles table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS properties (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create properties table: %w", err)
	}

	// Deleting a property cascades to its assignments and invoices.
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_properties (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			property_id UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, property_id)
		);
	`)
	if err != nil {
		return fmt.Errorf("create user_properties table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY,
			property_id UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			amount DECIMAL(15, 2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
			category VARCHAR(100),
			vendor VARCHAR(255),
			invoice_date DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create invoices table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_redirects (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			redirect_url TEXT NOT NULL,
			redirect_type VARCHAR(20) NOT NULL DEFAULT 'lease',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, redirect_type)
		);
	`)
	if err != nil {
		return fmt.Errorf("create user_redirects table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create contact_messages table: %w", err)
	}

	// Invoice change feed: every insert/update/delete notifies listeners
	// with the affected property id so dashboards can re-fetch.
	_, err = p.Pool.Exec(ctx, `
		CREATE OR REPLACE FUNCTION notify_invoice_change() RETURNS trigger AS $$
		BEGIN
			IF TG_OP = 'DELETE' THEN
				PERFORM pg_notify('invoice_changes', OLD.property_id::text);
				RETURN OLD;
			END IF;
			PERFORM pg_notify('invoice_changes', NEW.property_id::text);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;
	`)
	if err != nil {
		return fmt.Errorf("create invoice notify function: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		DROP TRIGGER IF EXISTS invoices_notify ON invoices;
		CREATE TRIGGER invoices_notify
		AFTER INSERT OR UPDATE OR DELETE ON invoices
		FOR EACH ROW EXECUTE FUNCTION notify_invoice_change();
	`)
	if err != nil {
		return fmt.Errorf("create invoice notify trigger: %w", err)
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
