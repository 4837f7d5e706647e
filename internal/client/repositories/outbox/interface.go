package outbox

import (
	"context"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
)

// Repository describes the sync outbox: an append-only log of local mutations
// awaiting replication. The pending queue is the subset with processed = 0;
// processed rows stay behind as an audit trail and are never mutated again.
type Repository interface {
	// Enqueue appends one unprocessed entry and returns its id. Ids are
	// monotonic, so ascending id order preserves the causal order of local
	// mutations (a user row is always enqueued before its vitals).
	Enqueue(ctx context.Context, kind models.EntityKind, entityID int64, action models.Action, payload []byte) (int64, error)

	// ListPending returns all unprocessed entries in ascending id order.
	ListPending(ctx context.Context) ([]models.OutboxEntry, error)

	// MarkProcessed flips exactly one still-unprocessed entry to processed.
	// Marking an already-processed or unknown id is an error, which protects
	// the once-processed-never-again invariant.
	MarkProcessed(ctx context.Context, id int64) error
}
