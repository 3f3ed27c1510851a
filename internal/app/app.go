package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nhl-player-db/internal/collector"
	"github.com/preston-bernstein/nhl-player-db/internal/config"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/teams"
	"github.com/preston-bernstein/nhl-player-db/internal/logging"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
	"github.com/preston-bernstein/nhl-player-db/internal/providers"
	"github.com/preston-bernstein/nhl-player-db/internal/snapshots"
)

var (
	metricsSetup = metrics.Setup
	newRunID     = uuid.NewString
)

// DatabaseWriter persists the finished database.
type DatabaseWriter interface {
	Write(db rosters.Database) (int64, error)
}

// App runs one collection: sweep, then write.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
	collector     *collector.Collector
	writer        DatabaseWriter
	seasons       seasons.Range
}

// New wires the provider stack, collector and writer from configuration.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	return newAppWithProvider(cfg, logger, nil)
}

func newAppWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*App, error) {
	r, err := cfg.SeasonRange()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	selected, err := teams.Select(cfg.Teams)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	col := collector.New(provider, logger, recorder, collector.Options{
		Teams:        selected,
		IncludeGames: cfg.IncludeGames,
		GameLimit:    cfg.GameLimit,
	})

	return &App{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		collector:     col,
		writer:        snapshots.NewWriter(cfg.Output),
		seasons:       r,
	}, nil
}

// Run sweeps every season and team, then writes the database. Request failures are
// tolerated; cancellation and write failures are returned and nothing is written.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, newRunID()))
	}
	ctx = logging.WithLogger(ctx, logger)

	a.startMetrics(logger)
	defer a.shutdown(logger)

	logging.Info(logger, "collection starting",
		slog.String(logging.FieldPath, a.cfg.Output),
		slog.String(logging.FieldProvider, a.cfg.Provider),
		slog.Int("start_year", a.seasons.Start()),
		slog.Int("end_year", a.seasons.End()),
		slog.Int64("delay_ms", a.cfg.Delay().Milliseconds()),
	)

	res, err := a.collector.Run(ctx, a.seasons)
	if err != nil {
		return err
	}

	size, err := a.writer.Write(res.Database)
	if err != nil {
		return fmt.Errorf("write database: %w", err)
	}

	logging.Info(logger, "database written",
		slog.String(logging.FieldPath, a.cfg.Output),
		slog.Int64("bytes", size),
		slog.Int("teams", len(res.Database.Teams)),
		slog.Int(logging.FieldCount, res.Database.TotalPlayers()),
		slog.Int("seasons", len(res.Database.SeasonsCovered)),
		slog.Int("failures", res.Stats.Failures),
	)
	return nil
}

func (a *App) startMetrics(logger *slog.Logger) {
	if a.metricsServer == nil {
		return
	}
	logging.Info(logger, "metrics server starting", slog.String("addr", a.metricsServer.Addr()))
	srv := a.metricsServer
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, "metrics server failed", "error", err)
		}
	}()
}

func (a *App) shutdown(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsStop != nil {
		if err := a.metricsStop(ctx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(logger, "metrics server shutdown failed", "error", err)
		}
	}
}

// Metrics exposes the recorder for callers that report on the run.
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OTLPEndpoint,
		OtlpInsecure: cfg.Metrics.OTLPInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
				WriteTimeout:      writeTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}
