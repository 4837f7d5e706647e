// Package store bootstraps the client's local SQLite database: it opens the
// single file resolved at startup, applies the embedded goose migrations and
// vends the repository set the services are built on.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/client/migrations"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/metadata"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/outbox"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/users"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/vitals"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local persistence layer behind one handle.
type Repositories struct {
	Users    users.Repository
	Vitals   vitals.Repository
	Outbox   outbox.Repository
	Metadata metadata.Repository

	db *sql.DB
}

// RunMigrations applies the embedded client migration set to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at path, migrates it, and
// returns the repository set. WAL journaling keeps the per-operation
// open/close access pattern cheap.
func Open(ctx context.Context, path string) (*Repositories, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Repositories{
		Users:    users.NewSQLiteRepository(db),
		Vitals:   vitals.NewSQLiteRepository(db),
		Outbox:   outbox.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error { return r.db.Close() }
