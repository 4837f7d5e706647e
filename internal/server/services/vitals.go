package services

import (
	"context"
	"database/sql"

	"github.com/RichiMaiden/menacor-vital/internal/dbx"
	"github.com/RichiMaiden/menacor-vital/internal/server/models"
	"github.com/RichiMaiden/menacor-vital/internal/server/repositories/repomanager"
)

// CreateVitalInput is a reading to replicate. Exactly one of UserID /
// UserExternal identifies the owner; handlers validate that before calling.
type CreateVitalInput struct {
	UserID       int64
	UserExternal string
	Date         string
	Systolic     *int64
	Diastolic    *int64
	Glucose      *float64
	Notes        *string
}

// VitalService replicates readings, resolving natural-key owner references.
type VitalService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewVitalService(db *sql.DB, repos repomanager.RepositoryManager) *VitalService {
	return &VitalService{db: db, repos: repos}
}

// Create resolves the owner (by remote id or by username) and inserts the
// reading, both inside one transaction so the owner cannot disappear between
// resolution and insert. An unresolvable UserExternal propagates
// common.ErrNotFound, which the HTTP layer maps to 404.
func (s *VitalService) Create(ctx context.Context, in CreateVitalInput) (int64, error) {
	var vitalID int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID := in.UserID
		if userID == 0 {
			id, err := s.repos.Users(tx).GetIDByUsername(ctx, in.UserExternal)
			if err != nil {
				return err
			}
			userID = id
		}

		id, err := s.repos.Vitals(tx).Create(ctx, &models.Vital{
			UserID:    userID,
			Date:      in.Date,
			Systolic:  in.Systolic,
			Diastolic: in.Diastolic,
			Glucose:   in.Glucose,
			Notes:     in.Notes,
		})
		if err != nil {
			return err
		}
		vitalID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return vitalID, nil
}
