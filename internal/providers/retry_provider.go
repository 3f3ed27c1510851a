package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/logging"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 500 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a DataProvider with exponential backoff. Every attempt is recorded.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. maxAttempts counts the first
// call, so 1 disables retrying. Values <= 0 fall back to defaults.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, rec *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	return retry(ctx, r, EndpointRoster, func() (rosters.Roster, error) {
		return r.inner.FetchRoster(ctx, team, season)
	}, slog.String(logging.FieldTeam, team), slog.String(logging.FieldSeason, season.String()))
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	return retry(ctx, r, EndpointSchedule, func() ([]games.Game, error) {
		return r.inner.FetchSchedule(ctx, team, season)
	}, slog.String(logging.FieldTeam, team), slog.String(logging.FieldSeason, season.String()))
}

func (r *retryingProvider) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	return retry(ctx, r, EndpointBoxscore, func() ([]players.Player, error) {
		return r.inner.FetchBoxscore(ctx, gameID, team)
	}, slog.Int64(logging.FieldGameID, gameID), slog.String(logging.FieldTeam, team))
}

func retry[T any](ctx context.Context, r *retryingProvider, endpoint string, op func() (T, error), attrs ...any) (T, error) {
	var zero T
	if r == nil || r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	attempt := 0
	operation := func() (T, error) {
		if err := ctx.Err(); err != nil {
			return zero, backoff.Permanent(err)
		}
		attempt++
		start := time.Now()
		out, err := op()
		r.metrics.RecordProviderAttempt(endpoint, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(endpoint, rl.RetryAfter)
		}
		if IsPermanent(err) || ctx.Err() != nil {
			return out, backoff.Permanent(err)
		}
		return out, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	notify := func(err error, wait time.Duration) {
		args := append([]any{
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("wait", wait),
			"err", err,
		}, attrs...)
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry", args...)
	}

	out, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil && r.maxAttempts > 1 {
		args := append([]any{
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int("attempts", attempt),
			"err", err,
		}, attrs...)
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed", args...)
	}
	return out, err
}
