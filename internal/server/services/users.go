// Package services holds the server-side application services sitting
// between the HTTP handlers and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/repomanager"
)

// UserService replicates client accounts into the server's key space.
type UserService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repos: repos}
}

// CreateIdempotent inserts the account, or — when the username already
// exists — resolves and returns the existing remote id. Clients deliver
// at-least-once, so a replayed user payload must succeed with the same
// outcome instead of erroring.
//
// Insert and lookup run in autocommit, not one transaction: PostgreSQL
// aborts a transaction after a constraint violation, so the recovery lookup
// would fail inside it.
func (s *UserService) CreateIdempotent(ctx context.Context, u *models.User) (int64, error) {
	repo := s.repos.Users(s.db)

	id, err := repo.Create(ctx, u)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, common.ErrDuplicateUser) {
		return 0, err
	}

	id, err = repo.GetIDByUsername(ctx, u.Username)
	if err != nil {
		return 0, fmt.Errorf("lookup after duplicate insert: %w", err)
	}
	return id, nil
}
