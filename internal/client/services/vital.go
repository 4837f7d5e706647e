package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/outbox"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/vitals"
)

// csvHeader is the fixed-language header row of the export, matching the UI.
var csvHeader = []string{"Fecha", "Sistólica", "Diastólica", "Glucosa", "Notas"}

// VitalService defines vital-sign operations for the CLI.
//
// Add never rejects a reading for unparseable numerics: pressure text that is
// neither "SYS/DIA" nor a bare integer stores NULL pressure, and glucose text
// that is not a float stores NULL glucose. Only storage-layer failures error.
type VitalService interface {
	Add(ctx context.Context, owner *models.User, date, pressureText, glucoseText, notes string) (int64, error)
	List(ctx context.Context, userID int64) ([]models.Vital, error)
	ExportCSV(ctx context.Context, userID int64, w io.Writer) error
}

type vitalService struct {
	vitals vitals.Repository
	outbox outbox.Repository
}

// NewVitalService constructs a VitalService over the given repositories.
func NewVitalService(vitals vitals.Repository, outbox outbox.Repository) VitalService {
	return &vitalService{vitals: vitals, outbox: outbox}
}

func (s *vitalService) Add(ctx context.Context, owner *models.User, date, pressureText, glucoseText, notes string) (int64, error) {
	systolic, diastolic := models.ParsePressure(pressureText)
	glucose := models.ParseGlucose(glucoseText)

	v := &models.Vital{
		UserID:    owner.ID,
		Date:      date,
		Systolic:  systolic,
		Diastolic: diastolic,
		Glucose:   glucose,
		Notes:     models.OptionalString(notes),
	}

	id, err := s.vitals.Create(ctx, v)
	if err != nil {
		return 0, err
	}

	// The remote replica keys users by username, so the payload references
	// the owner by natural key instead of the local numeric id.
	payload, err := models.EncodePayload(models.VitalPayload{
		UserExternal: owner.Username,
		Date:         v.Date,
		Systolic:     v.Systolic,
		Diastolic:    v.Diastolic,
		Glucose:      v.Glucose,
		Notes:        v.Notes,
	})
	if err != nil {
		return 0, err
	}

	if _, err := s.outbox.Enqueue(ctx, models.EntityKindVital, id, models.ActionCreate, payload); err != nil {
		return 0, fmt.Errorf("enqueue vital replication: %w", err)
	}

	return id, nil
}

func (s *vitalService) List(ctx context.Context, userID int64) ([]models.Vital, error) {
	return s.vitals.ListByUser(ctx, userID)
}

// ExportCSV writes the user's history as five columns with a header row.
// NULL numerics and notes become empty strings, never a "null" literal.
func (s *vitalService) ExportCSV(ctx context.Context, userID int64, w io.Writer) error {
	rows, err := s.vitals.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, v := range rows {
		record := []string{
			v.Date,
			formatInt(v.Systolic),
			formatInt(v.Diastolic),
			formatFloat(v.Glucose),
			formatString(v.Notes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
