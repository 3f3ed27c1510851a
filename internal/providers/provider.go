package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

// Endpoint names used for metrics and logs.
const (
	EndpointRoster   = "roster"
	EndpointSchedule = "schedule"
	EndpointBoxscore = "boxscore"
)

// RosterProvider fetches one team's roster for a season.
// Entries without both name parts are dropped and counted in Roster.Skipped.
type RosterProvider interface {
	FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error)
}

// GameLogProvider fetches schedules and the players who dressed in a game.
type GameLogProvider interface {
	FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error)
	// FetchBoxscore returns the players listed for team's side of the game.
	FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	RosterProvider
	GameLogProvider
}
