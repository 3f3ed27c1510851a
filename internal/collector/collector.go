package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/teams"
	"github.com/preston-bernstein/nhl-player-db/internal/logging"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
	"github.com/preston-bernstein/nhl-player-db/internal/providers"
	"github.com/preston-bernstein/nhl-player-db/internal/store"
)

const (
	defaultProgressEvery = 20
	defaultGameLimit     = 10
)

// Options controls what a sweep visits.
type Options struct {
	// Teams to request, historical codes included. Empty means every known code.
	Teams         []teams.Team
	IncludeGames  bool
	GameLimit     int
	ProgressEvery int
}

// Collector sweeps seasons × teams against a provider and accumulates names per current team.
// Requests are issued one at a time; pacing is the provider's concern.
type Collector struct {
	provider      providers.DataProvider
	logger        *slog.Logger
	metrics       *metrics.Recorder
	now           func() time.Time
	teams         []teams.Team
	includeGames  bool
	gameLimit     int
	progressEvery int
}

// Stats summarizes a sweep.
type Stats struct {
	Pairs        int
	Failures     int
	GameFailures int
	Skipped      int
	Added        int
	Duration     time.Duration
}

// Result is the database built by a sweep and its stats.
type Result struct {
	Database rosters.Database
	Stats    Stats
}

// New constructs a Collector with sane defaults.
func New(provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Collector {
	selected := opts.Teams
	if len(selected) == 0 {
		selected = teams.All()
	}
	if opts.GameLimit <= 0 {
		opts.GameLimit = defaultGameLimit
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = defaultProgressEvery
	}
	return &Collector{
		provider:      provider,
		logger:        logger,
		metrics:       recorder,
		now:           time.Now,
		teams:         append([]teams.Team(nil), selected...),
		includeGames:  opts.IncludeGames,
		gameLimit:     opts.GameLimit,
		progressEvery: opts.ProgressEvery,
	}
}

// Run visits every (season, team) pair, seasons outer, and returns the accumulated database.
// Per-pair failures are logged and counted; only cancellation aborts the sweep.
func (c *Collector) Run(ctx context.Context, r seasons.Range) (Result, error) {
	if c.provider == nil {
		return Result{}, providers.ErrProviderUnavailable
	}

	logger := logging.FromContext(ctx, c.logger)
	start := c.now()
	acc := store.NewRosterStore()
	acc.Register(teams.ConsolidatedCodes(c.teams)...)

	total := r.Len() * len(c.teams)
	logging.Info(logger, "sweep started",
		slog.Int("seasons", r.Len()),
		slog.Int("teams", len(c.teams)),
		slog.Int("pairs", total),
		slog.Bool("include_games", c.includeGames),
	)

	var stats Stats
	for season := range r.All() {
		for _, team := range c.teams {
			if err := ctx.Err(); err != nil {
				return Result{}, c.canceled(logger, start, stats, err)
			}
			c.collectPair(ctx, logger, acc, team, season, &stats)
			stats.Pairs++
			if stats.Pairs%c.progressEvery == 0 {
				logging.Info(logger, "sweep progress",
					slog.Int("done", stats.Pairs),
					slog.Int("pairs", total),
					slog.String(logging.FieldSeason, season.Label()),
					slog.Int(logging.FieldCount, acc.Count()),
				)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, c.canceled(logger, start, stats, err)
	}

	stats.Duration = c.now().Sub(start)
	c.metrics.RecordSweep(stats.Duration, nil)

	db := rosters.NewDatabase(acc.Snapshot(), c.now(), r.Strings())
	logging.Info(logger, "sweep complete",
		slog.Int("pairs", stats.Pairs),
		slog.Int("failures", stats.Failures),
		slog.Int("game_failures", stats.GameFailures),
		slog.Int(logging.FieldSkipped, stats.Skipped),
		slog.Int(logging.FieldCount, db.TotalPlayers()),
		slog.Int64(logging.FieldDurationMS, stats.Duration.Milliseconds()),
	)
	return Result{Database: db, Stats: stats}, nil
}

func (c *Collector) canceled(logger *slog.Logger, start time.Time, stats Stats, err error) error {
	elapsed := c.now().Sub(start)
	c.metrics.RecordSweep(elapsed, err)
	logging.Warn(logger, "sweep canceled",
		slog.Int("pairs", stats.Pairs),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return fmt.Errorf("sweep canceled after %d pairs: %w", stats.Pairs, err)
}

func (c *Collector) collectPair(ctx context.Context, logger *slog.Logger, acc *store.RosterStore, team teams.Team, season seasons.ID, stats *Stats) {
	code := team.Consolidated()
	added := 0

	roster, err := c.provider.FetchRoster(ctx, team.Abbreviation, season)
	switch {
	case err != nil && ctx.Err() != nil:
		return
	case err != nil:
		stats.Failures++
		logging.Warn(logger, "roster fetch failed",
			slog.String(logging.FieldTeam, team.Abbreviation),
			slog.String(logging.FieldSeason, season.Label()),
			"error", err,
		)
	default:
		added = acc.Add(code, roster.Players)
		stats.Skipped += roster.Skipped
		if logger != nil {
			logger.Debug("roster fetched",
				slog.String(logging.FieldTeam, team.Abbreviation),
				slog.String(logging.FieldSeason, season.Label()),
				slog.Int(logging.FieldCount, len(roster.Players)),
				slog.Int("added", added),
			)
		}
	}

	if c.includeGames && ctx.Err() == nil {
		added += c.collectGames(ctx, logger, acc, team, season, stats)
	}

	stats.Added += added
	c.metrics.RecordPair(code, added, roster.Skipped, err)
}

// collectGames adds players from the first gameLimit games the team played in the season.
func (c *Collector) collectGames(ctx context.Context, logger *slog.Logger, acc *store.RosterStore, team teams.Team, season seasons.ID, stats *Stats) int {
	schedule, err := c.provider.FetchSchedule(ctx, team.Abbreviation, season)
	if err != nil {
		if ctx.Err() == nil {
			stats.GameFailures++
			logging.Warn(logger, "schedule fetch failed",
				slog.String(logging.FieldTeam, team.Abbreviation),
				slog.String(logging.FieldSeason, season.Label()),
				"error", err,
			)
		}
		return 0
	}

	code := team.Consolidated()
	added := 0
	for _, game := range games.ForTeam(schedule, team.Abbreviation, c.gameLimit) {
		if ctx.Err() != nil {
			return added
		}
		list, err := c.provider.FetchBoxscore(ctx, game.ID, team.Abbreviation)
		if err != nil {
			if ctx.Err() == nil {
				stats.GameFailures++
				logging.Warn(logger, "boxscore fetch failed",
					slog.Int64(logging.FieldGameID, game.ID),
					slog.String(logging.FieldTeam, team.Abbreviation),
					"error", err,
				)
			}
			continue
		}
		names, skipped := players.Names(list)
		stats.Skipped += skipped
		added += acc.Add(code, names)
	}
	return added
}
