package vitals

import (
	"context"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vital) (int64, error) {
	query := `INSERT INTO vitals (user_id, date, pressure_systolic, pressure_diastolic, glucose, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		v.UserID, v.Date, v.Systolic, v.Diastolic, v.Glucose, v.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
