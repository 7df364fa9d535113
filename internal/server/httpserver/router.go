// Package httpserver exposes the GraphQL schema over HTTP.
package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	"github.com/dmitrijs2005/gqlblog/internal/server/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestObserver is satisfied by *metrics.Metrics.
type RequestObserver interface {
	ObserveRequest(route, method string, code int, elapsed time.Duration)
}

type Config struct {
	Schema     *graphql.Schema
	Sessions   session.Store
	Cookies    *session.CookieCodec
	SessionTTL time.Duration
	Logger     logging.Logger

	// Optional.
	Metrics  RequestObserver
	Gatherer prometheus.Gatherer
	Ready    func(ctx context.Context) error
	GraphiQL bool
}

type handler struct {
	cfg    Config
	logger logging.Logger
}

// NewRouter mounts:
//
//	POST /graphql        GraphQL endpoint (application/json)
//	GET  /graphiql       in-browser IDE, when enabled
//	GET  /schema.graphql schema in SDL
//	GET  /health         readiness as JSON
//	GET  /metrics        Prometheus exposition, when a gatherer is set
func NewRouter(cfg Config) chi.Router {
	h := &handler{cfg: cfg, logger: cfg.Logger.With("module", "http_server")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger, cfg.Metrics))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Get("/schema.graphql", h.schema)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	if cfg.GraphiQL {
		r.Get("/graphiql", graphiQL)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/graphiql", http.StatusFound)
		})
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Use(sessionMiddleware(cfg.Sessions, cfg.Cookies, cfg.SessionTTL, h.logger))
		r.Method(http.MethodPost, "/graphql", &relay.Handler{Schema: cfg.Schema})
	})
	return r
}

func (h *handler) schema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.cfg.Schema.ASTSchema().SchemaString))
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, map[string]string{"status": "ok"}
	if h.cfg.Ready != nil {
		if err := h.cfg.Ready(r.Context()); err != nil {
			h.logger.Warn(r.Context(), "health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
		}
	}
	respondWithJSON(w, status, body)
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
