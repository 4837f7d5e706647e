package metadata

import "context"

// Repository is a small key/value store for client bookkeeping that does not
// belong in the domain tables (currently just the install id).
type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
}
