package vitals

import (
	"context"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, v *models.Vital) (int64, error) {
	query := `INSERT INTO vitals (user_id, date, pressure_systolic, pressure_diastolic, glucose, notes)
	          VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		v.UserID, v.Date, v.Systolic, v.Diastolic, v.Glucose, v.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert vital: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted vital id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Vital, error) {
	query := `SELECT id, user_id, date, pressure_systolic, pressure_diastolic, glucose, notes, created_at, updated_at
	          FROM vitals WHERE user_id = ?
	          ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select vitals: %w", err)
	}
	defer rows.Close()

	var result []models.Vital
	for rows.Next() {
		var v models.Vital
		if err := rows.Scan(&v.ID, &v.UserID, &v.Date, &v.Systolic, &v.Diastolic,
			&v.Glucose, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vital row: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vital rows: %w", err)
	}
	return result, nil
}
