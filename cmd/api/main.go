package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"noticeboard/internal/config"
	"noticeboard/internal/infra/adapter/persistence/memory"
	pgRepo "noticeboard/internal/infra/adapter/persistence/postgres"
	"noticeboard/internal/infra/db"
	"noticeboard/internal/observability/logging"
	"noticeboard/internal/observability/metrics"
	"noticeboard/internal/observability/tracing"
	"noticeboard/internal/repository"
	"noticeboard/internal/resilience/circuitbreaker"

	annUC "noticeboard/internal/usecase/announcement"

	hhttp "noticeboard/internal/handler/http"
	hann "noticeboard/internal/handler/http/announcement"
	"noticeboard/internal/handler/http/requestid"
)

const serviceName = "noticeboard"

// rate limiter housekeeping
const (
	limiterCleanupInterval = time.Minute
	limiterMaxIdle         = 5 * time.Minute
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	migrateDown := flag.Bool("migrate-down", false, "drop the announcements schema and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log.Level)
	version := getVersion()

	if *migrateDown {
		if err := dropSchema(logger, cfg); err != nil {
			logger.Error("migrate down failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	if err := run(logger, cfg, version); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger initializes and returns a structured logger and installs it as the default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(level)
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

func run(logger *slog.Logger, cfg config.Config, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.InitProvider(serviceName, version)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	store, err := initStore(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer store.close(logger)

	components := setupServer(logger, cfg, store, version)
	return runServer(ctx, logger, cfg, components, version)
}

// dropSchema connects to the configured database and removes the announcements schema.
func dropSchema(logger *slog.Logger, cfg config.Config) error {
	if cfg.Database.Backend != config.BackendPostgres {
		return fmt.Errorf("dropSchema: backend %q has no schema", cfg.Database.Backend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.Database.URL, cfg.Database.Pool)
	if err != nil {
		return fmt.Errorf("dropSchema: %w", err)
	}
	defer database.Close()

	if err := db.MigrateDown(ctx, database); err != nil {
		return fmt.Errorf("dropSchema: %w", err)
	}
	logger.Warn("announcements schema dropped", slog.String("url", cfg.Database.RedactedURL()))
	return nil
}

// storeComponents holds the selected backend and the probes exposed to health checks.
type storeComponents struct {
	repo    repository.AnnouncementRepository
	db      *sql.DB
	breaker *circuitbreaker.DBCircuitBreaker
}

func (s *storeComponents) close(logger *slog.Logger) {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// initStore opens the configured backend. For postgres it connects with retry,
// runs migrations and seeds when enabled and wraps the pool in a circuit breaker.
func initStore(ctx context.Context, logger *slog.Logger, cfg config.Config) (*storeComponents, error) {
	if cfg.Database.Backend == config.BackendMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return &storeComponents{repo: memory.NewAnnouncementRepo()}, nil
	}

	logger.Info("connecting to database", slog.String("url", cfg.Database.RedactedURL()))
	database, err := db.Open(ctx, cfg.Database.URL, cfg.Database.Pool)
	if err != nil {
		return nil, fmt.Errorf("initStore: %w", err)
	}

	if cfg.Database.Migrate {
		if err := db.MigrateUp(ctx, database); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("initStore: %w", err)
		}
		logger.Info("database migrations applied")
	}
	if cfg.Database.Seed {
		if err := db.Seed(ctx, database); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("initStore: %w", err)
		}
		logger.Info("database seeded")
	}

	if err := metrics.RegisterDBStats(prometheus.DefaultRegisterer, database, serviceName); err != nil {
		logger.Warn("db stats collector not registered", slog.Any("error", err))
	}

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	return &storeComponents{
		repo:    pgRepo.NewAnnouncementRepo(breaker),
		db:      database,
		breaker: breaker,
	}, nil
}

// serverComponents holds components needed for server operation and cleanup.
type serverComponents struct {
	handler     http.Handler
	rateLimiter *hhttp.RateLimiter
}

// setupServer configures the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg config.Config, store *storeComponents, version string) *serverComponents {
	svc := &annUC.Service{
		Repo:       store.repo,
		Pagination: cfg.Pagination,
		Logger:     logger,
	}

	mux := http.NewServeMux()
	hann.Register(mux, svc, cfg.Pagination, logger)

	health := &hhttp.HealthHandler{InMemory: store.db == nil, Version: version}
	ready := &hhttp.ReadyHandler{InMemory: store.db == nil}
	if store.db != nil {
		health.DB, ready.DB = store.db, store.db
		health.Breaker, ready.Breaker = store.breaker, store.breaker
	}
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Middleware order: Request ID → Tracing → Recovery → Logging → Rate Limit → Body Limit → Metrics
	chain := []hhttp.Middleware{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		logging.Middleware(logger),
		hhttp.Logging(logger),
	}

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		chain = append(chain, limiter.Limit)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = append(chain,
		hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	)

	return &serverComponents{
		handler:     hhttp.Chain(mux, chain...),
		rateLimiter: limiter,
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.Config, components *serverComponents, version string) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           components.handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	if components.rateLimiter != nil {
		g.Go(func() error {
			components.rateLimiter.StartCleanup(gctx, limiterCleanupInterval, limiterMaxIdle, logger)
			return nil
		})
	}

	return g.Wait()
}
