package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/hoopsight/stintline/external/nbastats"
	"github.com/hoopsight/stintline/internal/config"
	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/infrastructure/repository/jsonstore"
	"github.com/hoopsight/stintline/internal/infrastructure/repository/postgres"
	"github.com/hoopsight/stintline/internal/interfaces/httpapi"
	"github.com/hoopsight/stintline/internal/platform/logging"
	"github.com/hoopsight/stintline/internal/platform/resilience"
	"github.com/hoopsight/stintline/internal/usecase"

	_ "github.com/lib/pq"
)

// App bundles the wired HTTP server with the pipeline service so both the
// API binary and the one-shot pipeline binary share the same construction.
type App struct {
	Server   *http.Server
	Pipeline *usecase.PipelineService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, db, err := buildArchiveStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	fetcher := nbastats.NewClient(nbastats.ClientConfig{
		BaseURL:    cfg.NBAStatsBaseURL,
		Timeout:    cfg.NBAStatsTimeout,
		MaxRetries: cfg.NBAStatsMaxRetries,
		RateDelay:  cfg.NBAStatsRateDelay,
		RetryWait:  cfg.NBAStatsRetryWait,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NBAStatsCircuitEnabled,
			FailureThreshold: cfg.NBAStatsCircuitFailureCount,
			OpenTimeout:      cfg.NBAStatsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NBAStatsCircuitHalfOpenMaxReq,
		},
	})

	pipeline := usecase.NewPipelineService(fetcher, store, logger)

	handler := httpapi.NewHandler(store, pipeline, logger)
	router := httpapi.NewRouter(
		handler,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{Server: server, Pipeline: pipeline, db: db}, nil
}

// Close releases resources the app holds open, currently just the DB pool.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildArchiveStore(cfg config.Config, logger *logging.Logger) (archive.Store, *sqlx.DB, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open archive db: %w", err)
		}
		logger.Info("archive store ready", "backend", cfg.StorageBackend, "db", dbNameFromURL(cfg.DBURL))
		return postgres.NewArchiveRepository(db), db, nil
	default:
		logger.Info("archive store ready", "backend", config.StorageBackendJSON, "dir", cfg.DataDir)
		return jsonstore.NewStore(cfg.DataDir, logger), nil, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
