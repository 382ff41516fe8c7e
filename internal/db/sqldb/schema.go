package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect selects placeholder style and schema introspection.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

const createLeadsTableSQL = `
CREATE TABLE IF NOT EXISTS leads (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    message TEXT NOT NULL
);`

// Colonnes ajoutées après la première version du schéma.
var leadColumns = map[string]string{
	"phone": "TEXT",
	"lang":  "TEXT",
}

// EnsureSchema creates the leads table and adds missing columns.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, createLeadsTableSQL); err != nil {
		return fmt.Errorf("create leads table: %w", err)
	}
	if err := ensureColumns(ctx, db, d, "leads", leadColumns); err != nil {
		return fmt.Errorf("ensure leads columns: %w", err)
	}
	return nil
}

func ensureColumns(ctx context.Context, db *sql.DB, d Dialect, table string, cols map[string]string) error {
	if d == Postgres {
		for name, colType := range cols {
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", table, name, colType),
			); err != nil {
				return err
			}
		}
		return nil
	}

	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+table+")")
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	for name, colType := range cols {
		if !existing[name] {
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, name, colType),
			); err != nil {
				return err
			}
		}
	}
	return nil
}
