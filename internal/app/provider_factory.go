package app

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-player-db/internal/config"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
	"github.com/preston-bernstein/nhl-player-db/internal/providers"
	"github.com/preston-bernstein/nhl-player-db/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-player-db/internal/providers/nhle"
)

// providerFactory assembles the provider with shared wrappers (retry inside, rate limit outside).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger, f.metrics)
	retrying := providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Retry.Attempts, cfg.Retry.Backoff)
	return providers.NewRateLimitedProvider(retrying, cfg.Delay(), f.logger)
}

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderNHLE, "":
		return nhle.NewClient(nhle.Config{
			BaseURL:   cfg.NHLE.BaseURL,
			UserAgent: cfg.NHLE.UserAgent,
			Timeout:   cfg.NHLE.Timeout,
			Metrics:   recorder,
		})
	case config.ProviderFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhle", slog.String("provider", cfg.Provider))
		}
		return nhle.NewClient(nhle.Config{
			BaseURL:   cfg.NHLE.BaseURL,
			UserAgent: cfg.NHLE.UserAgent,
			Timeout:   cfg.NHLE.Timeout,
			Metrics:   recorder,
		})
	}
}
