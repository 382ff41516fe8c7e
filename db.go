package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	bolt "go.etcd.io/bbolt"

	"careerpath/internal/config"
	"careerpath/internal/db"
	"careerpath/internal/db/kvdb"
	"careerpath/internal/db/sqldb"
)

// openLeadStore opens the store named by settings.Database and makes sure
// its schema exists. The returned func closes the underlying handle.
func openLeadStore(ctx context.Context, settings *config.Settings) (db.LeadStore, func() error, error) {
	scheme, rest := config.SplitDSN(settings.Database)
	switch scheme {
	case "sqlite", "sqlite3":
		conn, err := sql.Open("sqlite3", "file:"+rest+"?_busy_timeout=5000&_foreign_keys=on")
		if err != nil {
			return nil, nil, err
		}
		if err := sqldb.EnsureSchema(ctx, conn, sqldb.SQLite); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return sqldb.NewLeadStore(conn, sqldb.SQLite), conn.Close, nil

	case "postgres", "postgresql":
		conn, err := sql.Open("postgres", settings.Database)
		if err != nil {
			return nil, nil, err
		}
		conn.SetMaxOpenConns(10)
		conn.SetConnMaxIdleTime(5 * time.Minute)
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := sqldb.EnsureSchema(ctx, conn, sqldb.Postgres); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return sqldb.NewLeadStore(conn, sqldb.Postgres), conn.Close, nil

	case "kvdb", "bolt":
		conn, err := bolt.Open(rest, 0o600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt %s: %w", rest, err)
		}
		store, err := kvdb.NewLeadStore(conn)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store, conn.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported database scheme %q", scheme)
}
