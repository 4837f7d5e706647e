package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/outbox"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/users"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/vitals"
	"github.com/RichiMaiden/menacor-vital/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type testRepos struct {
	db     *sql.DB
	users  *users.SQLiteRepository
	vitals *vitals.SQLiteRepository
	outbox *outbox.SQLiteRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
	CREATE TABLE users (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  username TEXT UNIQUE NOT NULL,
	  password TEXT NOT NULL,
	  full_name TEXT,
	  birthdate TEXT NOT NULL,
	  email TEXT,
	  created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	CREATE TABLE vitals (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  user_id INTEGER NOT NULL,
	  date TEXT NOT NULL,
	  pressure_systolic INTEGER,
	  pressure_diastolic INTEGER,
	  glucose REAL,
	  notes TEXT,
	  created_at TEXT NOT NULL DEFAULT (datetime('now')),
	  updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	CREATE TABLE outbox (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  entity TEXT NOT NULL,
	  entity_id INTEGER NOT NULL,
	  action TEXT NOT NULL,
	  payload TEXT NOT NULL,
	  processed INTEGER NOT NULL DEFAULT 0,
	  created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`)
	require.NoError(t, err)

	return &testRepos{
		db:     db,
		users:  users.NewSQLiteRepository(db),
		vitals: vitals.NewSQLiteRepository(db),
		outbox: outbox.NewSQLiteRepository(db),
	}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
