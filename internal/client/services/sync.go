package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/client/remote"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/outbox"
	"github.com/RichiMaiden/menacor-vital/internal/logging"
)

// DeliveryStatus classifies the outcome of one outbox entry's dispatch, so a
// retry/backoff policy can be layered on later without re-deriving failure
// classes from raw errors.
type DeliveryStatus string

const (
	// Delivered: the server acknowledged the entry; it is now processed.
	Delivered DeliveryStatus = "delivered"
	// TransientFailure: connectivity or server-side trouble; the entry stays
	// pending and the next sync will retry it.
	TransientFailure DeliveryStatus = "transient_failure"
	// PermanentFailure: the entry itself is bad (undecodable payload, unknown
	// kind, rejected by the server). It also stays pending — there is no
	// dead-letter queue yet — but retrying it cannot succeed.
	PermanentFailure DeliveryStatus = "permanent_failure"
)

// DeliveryResult is the per-entry outcome of one sync pass.
type DeliveryResult struct {
	EntryID int64
	Kind    models.EntityKind
	Status  DeliveryStatus
	Err     error
}

// SyncService drains the outbox to the remote backend. It is strictly
// best-effort and never raises to its caller: every failure mode degrades to
// zero or partial progress.
type SyncService interface {
	// Sync performs one pass: probe reachability, then dispatch all pending
	// entries in ascending id order, marking each processed the moment the
	// server acknowledges it. A failed probe yields an empty report. A
	// failing entry never blocks the entries behind it.
	Sync(ctx context.Context) []DeliveryResult

	// SyncIfPossible is the fire-and-forget wrapper: one pass, returning
	// only the number of entries delivered.
	SyncIfPossible(ctx context.Context) int
}

type syncService struct {
	client remote.Client
	outbox outbox.Repository
	logger logging.Logger
}

// NewSyncService constructs a SyncService over the given backend client and
// outbox repository.
func NewSyncService(client remote.Client, outbox outbox.Repository, logger logging.Logger) SyncService {
	return &syncService{client: client, outbox: outbox, logger: logger.With("component", "sync")}
}

func (s *syncService) SyncIfPossible(ctx context.Context) int {
	processed := 0
	for _, r := range s.Sync(ctx) {
		if r.Status == Delivered {
			processed++
		}
	}
	return processed
}

func (s *syncService) Sync(ctx context.Context) []DeliveryResult {
	if err := s.client.Ping(ctx); err != nil {
		s.logger.Debug(ctx, "backend unreachable, skipping sync", "error", err)
		return nil
	}

	pending, err := s.outbox.ListPending(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to read outbox", "error", err)
		return nil
	}

	results := make([]DeliveryResult, 0, len(pending))
	for _, entry := range pending {
		r := s.dispatch(ctx, entry)

		if r.Status == Delivered {
			// Per-entry commit: a later failure must not roll back earlier
			// acknowledgements.
			if err := s.outbox.MarkProcessed(ctx, entry.ID); err != nil {
				s.logger.Error(ctx, "delivered but not marked, will re-send next sync",
					"entry_id", entry.ID, "error", err)
				r = DeliveryResult{EntryID: entry.ID, Kind: entry.Kind, Status: TransientFailure, Err: err}
			}
		} else {
			s.logger.Warn(ctx, "entry not delivered",
				"entry_id", entry.ID, "kind", entry.Kind, "status", r.Status, "error", r.Err)
		}

		results = append(results, r)
	}
	return results
}

// dispatch sends one entry and classifies the outcome. It never mutates the
// outbox; marking processed is the caller's job.
func (s *syncService) dispatch(ctx context.Context, entry models.OutboxEntry) DeliveryResult {
	result := DeliveryResult{EntryID: entry.ID, Kind: entry.Kind}

	if entry.Action != models.ActionCreate {
		result.Status = PermanentFailure
		result.Err = fmt.Errorf("unsupported action %q", entry.Action)
		return result
	}

	payload, err := models.DecodePayload(entry.Kind, entry.Payload)
	if err != nil {
		result.Status = PermanentFailure
		result.Err = err
		return result
	}

	switch p := payload.(type) {
	case models.UserPayload:
		_, err = s.client.CreateUser(ctx, p)
	case models.VitalPayload:
		_, err = s.client.CreateVital(ctx, p)
	default:
		result.Status = PermanentFailure
		result.Err = fmt.Errorf("%w: %T", models.ErrUnknownEntityKind, payload)
		return result
	}

	switch {
	case err == nil:
		result.Status = Delivered
	case errors.Is(err, remote.ErrRejected):
		result.Status = PermanentFailure
		result.Err = err
	default:
		result.Status = TransientFailure
		result.Err = err
	}
	return result
}
