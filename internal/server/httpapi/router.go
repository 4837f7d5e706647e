// Package httpapi exposes the server's JSON HTTP surface:
//
//	GET  /health      — reachability probe for syncing clients
//	POST /api/users   — replicate an account (idempotent by username)
//	POST /api/vitals  — replicate a reading (404 on unknown user_external)
package httpapi

import (
	"net/http"
	"time"

	"github.com/RichiMaiden/menacor-vital/internal/common"
	"github.com/RichiMaiden/menacor-vital/internal/logging"
	"github.com/RichiMaiden/menacor-vital/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// API bundles the handler dependencies.
type API struct {
	logger logging.Logger
	users  *services.UserService
	vitals *services.VitalService
}

func NewAPI(logger logging.Logger, users *services.UserService, vitals *services.VitalService) *API {
	return &API{logger: logger.With("component", "httpapi"), users: users, vitals: vitals}
}

// NewRouter wires middleware and routes. CORS is wide open: the original
// deployment serves desktop clients from arbitrary origins.
func NewRouter(api *API) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", common.ClientIDHeaderName},
	}))
	r.Use(api.requestLogger)

	r.Get("/health", api.Health)
	r.Post("/api/users", api.CreateUser)
	r.Post("/api/vitals", api.CreateVital)

	return r
}

// requestLogger records one line per request, tagging the syncing client's
// install id when it identifies itself.
func (api *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		api.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"client_id", r.Header.Get(common.ClientIDHeaderName),
		)
	})
}
