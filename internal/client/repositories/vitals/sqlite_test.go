package vitals

import (
	"context"
	"database/sql"
	"testing"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE vitals (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  user_id INTEGER NOT NULL,
	  date TEXT NOT NULL,
	  pressure_systolic INTEGER,
	  pressure_diastolic INTEGER,
	  glucose REAL,
	  notes TEXT,
	  created_at TEXT NOT NULL DEFAULT (datetime('now')),
	  updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	require.NoError(t, err)

	return db
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	s, d := int64(120), int64(80)
	notes := "caminé 5 km"
	id, err := repo.Create(ctx, &models.Vital{
		UserID:    1,
		Date:      "2024-05-01",
		Systolic:  &s,
		Diastolic: &d,
		Notes:     &notes,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	require.NotNil(t, list[0].Systolic)
	assert.EqualValues(t, 120, *list[0].Systolic)
	assert.Nil(t, list[0].Glucose)
	require.NotNil(t, list[0].Notes)
	assert.Equal(t, notes, *list[0].Notes)
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	// Insertion order deliberately scrambled relative to dates, plus two
	// readings on the same date to exercise the id tie-break.
	for _, date := range []string{"2024-05-02", "2024-05-01", "2024-05-03", "2024-05-03"} {
		_, err := repo.Create(ctx, &models.Vital{UserID: 7, Date: date})
		require.NoError(t, err)
	}

	list, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "2024-05-03", list[0].Date)
	assert.Equal(t, "2024-05-03", list[1].Date)
	assert.Greater(t, list[0].ID, list[1].ID)
	assert.Equal(t, "2024-05-02", list[2].Date)
	assert.Equal(t, "2024-05-01", list[3].Date)
}

func TestListFiltersByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	_, err := repo.Create(ctx, &models.Vital{UserID: 1, Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Vital{UserID: 2, Date: "2024-05-01"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repo.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, list)
}
