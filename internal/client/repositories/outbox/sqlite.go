package outbox

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

func (r *SQLiteRepository) Enqueue(ctx context.Context, kind models.EntityKind, entityID int64, action models.Action, payload []byte) (int64, error) {
	query := `INSERT INTO outbox (entity, entity_id, action, payload)
	          VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, string(kind), entityID, string(action), payload)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue outbox entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get enqueued entry id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context) ([]models.OutboxEntry, error) {
	query := `SELECT id, entity, entity_id, action, payload, processed, created_at
	          FROM outbox WHERE processed = 0
	          ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending entries: %w", err)
	}
	defer rows.Close()

	var result []models.OutboxEntry
	for rows.Next() {
		var e models.OutboxEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.EntityID, &e.Action, &e.Payload, &e.Processed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox row: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outbox rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) MarkProcessed(ctx context.Context, id int64) error {
	query := `UPDATE outbox SET processed = 1 WHERE id = ? AND processed = 0`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark entry processed: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}
