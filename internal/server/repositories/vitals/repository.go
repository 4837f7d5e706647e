package vitals

import (
	"context"

	"github.com/RichiMaiden/menacor-vital/internal/server/models"
)

type Repository interface {
	// Create inserts a reading and returns its remote id. Not idempotent:
	// re-sent payloads create duplicate rows, matching the replication
	// contract for vitals.
	Create(ctx context.Context, vital *models.Vital) (int64, error)
}
