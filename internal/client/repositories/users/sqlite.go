package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, password, full_name, birthdate, email)
	          VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		user.Username, user.Password, user.FullName, user.Birthdate, user.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, common.ErrDuplicateUser
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query := `SELECT id, username, password, full_name, birthdate, email, created_at
	          FROM users WHERE username = ? AND password = ?`
	return r.getOne(ctx, query, username, password)
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password, full_name, birthdate, email, created_at
	          FROM users WHERE username = ?`
	return r.getOne(ctx, query, username)
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Birthdate, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

// isUniqueViolation reports whether err is the driver's unique-constraint
// error. The username column is the only unique natural key in the client
// schema, so any unique violation on insert means a duplicate account.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}
