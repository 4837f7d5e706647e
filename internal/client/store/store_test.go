package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigratesAndVendsRepositories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	repos, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	// The migrated schema is usable end to end.
	id, err := repos.Users.Create(ctx, &models.User{Username: "ana", Password: "pw", Birthdate: "1990-05-17"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = repos.Vitals.Create(ctx, &models.Vital{UserID: id, Date: "2024-05-01"})
	require.NoError(t, err)

	_, err = repos.Outbox.Enqueue(ctx, models.EntityKindUser, id, models.ActionCreate, []byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, repos.Metadata.Set(ctx, "client_id", []byte("abc")))
}

func TestOpenIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	repos, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = repos.Users.Create(ctx, &models.User{Username: "ana", Password: "pw", Birthdate: "1990-05-17"})
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	// Re-opening the same file must not re-run migrations destructively.
	repos, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	u, err := repos.Users.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
}
