package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/users"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/vitals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// fakeUserRepo keys accounts by username, handing out sequential ids.
type fakeUserRepo struct {
	ids    map[string]int64
	next   int64
	failed error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{ids: map[string]int64{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) (int64, error) {
	if f.failed != nil {
		return 0, f.failed
	}
	if _, ok := f.ids[u.Username]; ok {
		return 0, common.ErrDuplicateUser
	}
	f.next++
	f.ids[u.Username] = f.next
	return f.next, nil
}

func (f *fakeUserRepo) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	id, ok := f.ids[username]
	if !ok {
		return 0, common.ErrNotFound
	}
	return id, nil
}

type fakeVitalRepo struct {
	rows   []models.Vital
	failed error
}

func (f *fakeVitalRepo) Create(ctx context.Context, v *models.Vital) (int64, error) {
	if f.failed != nil {
		return 0, f.failed
	}
	f.rows = append(f.rows, *v)
	return int64(len(f.rows)), nil
}

// fakeRepoManager hands out the fakes and records the DBTX each factory was
// bound to, so tests can verify transaction scoping.
type fakeRepoManager struct {
	userRepo  *fakeUserRepo
	vitalRepo *fakeVitalRepo

	lastUsersDBTX  dbx.DBTX
	lastVitalsDBTX dbx.DBTX
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{userRepo: newFakeUserRepo(), vitalRepo: &fakeVitalRepo{}}
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	f.lastUsersDBTX = db
	return f.userRepo
}

func (f *fakeRepoManager) Vitals(db dbx.DBTX) vitals.Repository {
	f.lastVitalsDBTX = db
	return f.vitalRepo
}

// setupDB provides a handle for transaction scoping; the fakes ignore it.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateIdempotent(t *testing.T) {
	ctx := context.Background()
	rm := newFakeRepoManager()
	svc := NewUserService(setupDB(t), rm)

	id1, err := svc.CreateIdempotent(ctx, &models.User{Username: "ana", Password: "pw", Birthdate: "1990-05-17"})
	require.NoError(t, err)

	// A replayed payload resolves to the same id instead of erroring.
	id2, err := svc.CreateIdempotent(ctx, &models.User{Username: "ana", Password: "pw", Birthdate: "1990-05-17"})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	id3, err := svc.CreateIdempotent(ctx, &models.User{Username: "beto", Password: "pw", Birthdate: "1985-01-01"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestCreateIdempotentRunsInAutocommit(t *testing.T) {
	ctx := context.Background()
	rm := newFakeRepoManager()
	db := setupDB(t)
	svc := NewUserService(db, rm)

	_, err := svc.CreateIdempotent(ctx, &models.User{Username: "ana"})
	require.NoError(t, err)

	// Insert-then-lookup must see the shared handle, not a transaction:
	// PostgreSQL would abort a tx after the constraint violation.
	assert.Same(t, db, rm.lastUsersDBTX)
}

func TestCreateIdempotentPropagatesOtherErrors(t *testing.T) {
	ctx := context.Background()
	rm := newFakeRepoManager()
	rm.userRepo.failed = errors.New("connection reset")
	svc := NewUserService(setupDB(t), rm)

	_, err := svc.CreateIdempotent(ctx, &models.User{Username: "ana"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateUser)
}
