package users

import (
	"context"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
)

// Repository describes account operations against the local store.
type Repository interface {
	// Create inserts a new account and returns its local id. A username
	// collision surfaces as common.ErrDuplicateUser, detected from the
	// store's unique constraint rather than a pre-check, so there is no
	// window between check and insert.
	Create(ctx context.Context, user *models.User) (int64, error)

	// GetByCredentials returns the account matching both username and
	// password exactly, or common.ErrNotFound.
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)

	// GetByUsername returns the account with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
