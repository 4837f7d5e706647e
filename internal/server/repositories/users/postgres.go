package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint errors.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, password, full_name, birthdate, email)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.FullName, user.Birthdate, user.Email).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, common.ErrDuplicateUser
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	query := `SELECT id FROM users WHERE username = $1`

	var id int64
	err := r.db.QueryRowContext(ctx, query, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
