package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/logging"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider waits a fixed delay before every upstream call.
type rateLimitedProvider struct {
	next   DataProvider
	delay  time.Duration
	logger *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that sleeps for delay before each call.
// A non-positive delay disables waiting. Cancellation aborts the wait.
func NewRateLimitedProvider(next DataProvider, delay time.Duration, logger *slog.Logger) DataProvider {
	if delay < 0 {
		delay = 0
	}
	return &rateLimitedProvider{
		next:   next,
		delay:  delay,
		logger: logger,
	}
}

func (p *rateLimitedProvider) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	if err := p.wait(ctx, EndpointRoster); err != nil {
		return rosters.Roster{}, err
	}
	return p.next.FetchRoster(ctx, team, season)
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	if err := p.wait(ctx, EndpointSchedule); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, team, season)
}

func (p *rateLimitedProvider) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	if err := p.wait(ctx, EndpointBoxscore); err != nil {
		return nil, err
	}
	return p.next.FetchBoxscore(ctx, gameID, team)
}

func (p *rateLimitedProvider) wait(ctx context.Context, endpoint string) error {
	if p == nil || p.next == nil {
		var logger *slog.Logger
		if p != nil {
			logger = p.logger
		}
		logWithProvider(ctx, logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.delay == 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled",
			slog.String(logging.FieldEndpoint, endpoint))
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
