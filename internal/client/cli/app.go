package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/RichiMaiden/menacor-vital/internal/client/config"
	"github.com/RichiMaiden/menacor-vital/internal/client/remote"
	"github.com/RichiMaiden/menacor-vital/internal/client/services"
	"github.com/RichiMaiden/menacor-vital/internal/client/store"
	"github.com/RichiMaiden/menacor-vital/internal/logging"
	"github.com/google/uuid"
)

// metadata key holding the persisted install id.
const clientIDKey = "client_id"

// App wires the local store, the services and the interactive loop together.
type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        *store.Repositories
	authService  services.AuthService
	vitalService services.VitalService
	syncService  services.SyncService
	session      *Session
	reader       *bufio.Reader
}

// NewApp opens (and migrates) the local database at the configured path and
// builds the service stack on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := store.Open(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	clientID, err := ensureClientID(ctx, repos)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	apiClient := remote.NewHTTPClient(c.BackendBaseURL, clientID)

	return &App{
		config:       c,
		logger:       logger,
		repos:        repos,
		authService:  services.NewAuthService(repos.Users, repos.Outbox),
		vitalService: services.NewVitalService(repos.Vitals, repos.Outbox),
		syncService:  services.NewSyncService(apiClient, repos.Outbox, logger),
		session:      &Session{},
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// ensureClientID returns the persisted install id, generating and storing a
// fresh one on first run.
func ensureClientID(ctx context.Context, repos *store.Repositories) (string, error) {
	v, err := repos.Metadata.Get(ctx, clientIDKey)
	if err != nil {
		return "", fmt.Errorf("error reading client id: %w", err)
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := repos.Metadata.Set(ctx, clientIDKey, []byte(id)); err != nil {
		return "", fmt.Errorf("error saving client id: %w", err)
	}
	return id, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	s := a.session.Username()
	if s == "" {
		return "(sin sesión)"
	}
	return "(" + s + ")"
}

// Run executes the interactive loop until EOF or an exit command. A startup
// sync drains anything left pending by a previous run.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	printlnFn("Menacor Vital CLI (type 'help' for commands)")
	printlnFn("Base local:", a.config.DBPath)

	if n := a.syncService.SyncIfPossible(ctx); n > 0 {
		printlnFn(fmt.Sprintf("Sincronizados %d registros pendientes.", n))
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
