package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (
	  key TEXT PRIMARY KEY,
	  value BLOB
	)`)
	require.NoError(t, err)

	return db
}

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(ctx, "client_id")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "client_id", []byte("abc-123")))

	v, err := repo.Get(ctx, "client_id")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc-123"), v)
}

func TestSetUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "client_id", []byte("first")))
	require.NoError(t, repo.Set(ctx, "client_id", []byte("second")))

	v, err := repo.Get(ctx, "client_id")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), v)
}
