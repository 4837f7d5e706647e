package users

import (
	"context"

	"github.com/RichiMaiden/menacor-vital/internal/server/models"
)

type Repository interface {
	// Create inserts an account and returns its remote id. A username
	// collision maps to common.ErrDuplicateUser via the unique constraint.
	Create(ctx context.Context, user *models.User) (int64, error)

	// GetIDByUsername resolves a natural-key reference to the remote id,
	// or common.ErrNotFound.
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}
