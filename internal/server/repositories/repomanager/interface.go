package repomanager

import (
	"context"
	"database/sql"

	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/users"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/vitals"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against the shared handle or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Vitals(db dbx.DBTX) vitals.Repository
}
