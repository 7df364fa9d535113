// Package server wires the gqlblog service together: storage and session
// backends, the GraphQL schema, the HTTP endpoint and the gRPC health
// service, and runs them until the process is told to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	"github.com/dmitrijs2005/gqlblog/internal/server/auth"
	"github.com/dmitrijs2005/gqlblog/internal/server/config"
	"github.com/dmitrijs2005/gqlblog/internal/server/graph"
	"github.com/dmitrijs2005/gqlblog/internal/server/httpserver"
	"github.com/dmitrijs2005/gqlblog/internal/server/metrics"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gqlblog/internal/server/services"
	"github.com/dmitrijs2005/gqlblog/internal/server/session"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gqlblog/internal/server/grpc"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	sessions session.Store
	redis    *redis.Client
	http     *http.Server
	grpc     *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, level))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	repos, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.repos = repos

	if err := app.initSessions(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("session store init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	hasher := auth.NewPasswordHasher()
	validate := services.NewValidator()
	resolver := graph.NewResolver(
		services.NewUserService(repos.Users(), repos.Posts(), hasher, validate),
		services.NewPostService(repos.Posts(), validate, c.EnforcePostOwnership),
		services.NewAuthService(repos.Users(), hasher),
		logger,
	)
	schema, err := graph.NewSchema(resolver,
		graphql.MaxParallelism(max(c.MaxParallelism, 1)),
		graphql.Tracer(graph.NewTracer(m)),
	)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	router := httpserver.NewRouter(httpserver.Config{
		Schema:   schema,
		Sessions: app.sessions,
		Cookies: session.NewCookieCodec(session.CookieOptions{
			Name:   c.CookieName,
			Secret: []byte(c.SecretKey),
			TTL:    c.SessionTTL,
			Secure: c.CookieSecure,
		}),
		SessionTTL: c.SessionTTL,
		Logger:     logger,
		Metrics:    m,
		Gatherer:   registry,
		Ready:      app.ready,
		GraphiQL:   c.GraphiQL,
	})

	app.http = &http.Server{
		Addr:              c.EndpointAddrHTTP,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger)

	return app, nil
}

func newRepositoryManager(c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageBackend {
	case config.BackendPostgres:
		return repomanager.OpenPostgres(c.DatabaseDSN)
	case config.BackendMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSessions(ctx context.Context) error {
	switch app.config.SessionBackend {
	case config.BackendRedis:
		client, err := session.NewRedisClient(ctx, app.config.RedisAddr, app.config.RedisPassword, app.config.RedisDB)
		if err != nil {
			return err
		}
		app.redis = client
		app.sessions = session.NewRedisStore(client)
	case config.BackendMemory:
		app.sessions = session.NewMemoryStore()
	default:
		return fmt.Errorf("unknown session backend %q", app.config.SessionBackend)
	}
	return nil
}

// ready checks both external collaborators.
func (app *App) ready(ctx context.Context) error {
	if err := app.repos.Ping(ctx); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if app.redis != nil {
		if err := app.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("sessions: %w", err)
		}
	}
	return nil
}

func (app *App) close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error(context.Background(), "error closing redis client", "error", err)
		}
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing storage", "error", err)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) serveHTTP(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.http.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)
	if err := app.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Run migrates storage, serves HTTP and gRPC, and blocks until ctx is done
// or a signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if err := app.ready(ctx); err != nil {
		return err
	}
	app.grpc.SetServing(true)

	app.initSignalHandler(cancelFunc)

	// the first server to fail cancels gctx and stops the other
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.grpc.Run(gctx)
	})
	g.Go(func() error {
		return app.serveHTTP(gctx)
	})
	err := g.Wait()
	if err != nil {
		app.logger.Error(context.Background(), "server failed", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
