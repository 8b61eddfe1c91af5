package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
)

// schemaStatements criam as tabelas lidas pela fonte postgres
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		store_nbr TEXT NOT NULL,
		family TEXT NOT NULL,
		sales DOUBLE PRECISION NOT NULL CHECK (sales >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS sales_date_idx ON sales (date)`,
	`CREATE TABLE IF NOT EXISTS holidays_events (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		type TEXT NOT NULL,
		locale TEXT NOT NULL,
		locale_name TEXT NOT NULL,
		description TEXT NOT NULL,
		transferred BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS holidays_events_date_idx ON holidays_events (date)`,
}

// EnsureSchema cria as tabelas sales e holidays_events caso não existam
func EnsureSchema(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao criar schema: %w", err)
			}
		}
		return nil
	})
}
