package vitals

import (
	"context"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
)

// Repository describes persistence for vital-sign readings. Readings are
// append-only: created on save, never updated or deleted.
type Repository interface {
	// Create inserts a reading and returns its local id.
	Create(ctx context.Context, vital *models.Vital) (int64, error)

	// ListByUser returns the user's readings newest first: date descending,
	// then id descending so same-day readings keep insertion order.
	ListByUser(ctx context.Context, userID int64) ([]models.Vital, error)
}
