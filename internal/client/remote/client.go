// Package remote contains the client-side building blocks for talking to the
// Menacor Vital sync backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the three operations the backend exposes: health probe, user creation
//     and vital creation.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) with the short
//     probe timeout and the longer create timeout the sync driver relies on.
//
// # Error Handling
//
// Failures are exposed as two sentinel errors that callers match with
// errors.Is, because the sync driver only cares about the distinction:
//
//   - ErrUnavailable — connectivity problems, timeouts, 5xx responses;
//     retrying later may succeed (transient).
//   - ErrRejected — the server understood the request and refused it
//     (4xx); retrying the same payload will fail again (permanent).
package remote

import (
	"context"
	"errors"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrRejected    = errors.New("request rejected by server")
)

// Client is the API contract for the sync backend. Remote ids live in the
// server's own key space and are returned for logging only; the client never
// stores them.
type Client interface {
	// Ping probes backend reachability with a bounded timeout.
	Ping(ctx context.Context) error

	// CreateUser replicates an account. The call is idempotent by natural
	// key: re-sending the same username yields the existing remote id.
	CreateUser(ctx context.Context, p models.UserPayload) (int64, error)

	// CreateVital replicates a reading, resolving the owner via
	// user_external on the server side. Not idempotent: re-sending the same
	// payload creates a duplicate remote row.
	CreateVital(ctx context.Context, p models.VitalPayload) (int64, error)
}
