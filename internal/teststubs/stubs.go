package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

// RosterKey builds the map key used by StubProvider for a (team, season) pair.
func RosterKey(team string, season seasons.ID) string {
	return team + "/" + season.String()
}

// StubProvider is a test double for providers.DataProvider.
// Rosters and RosterErrs are keyed by RosterKey; missing keys return an empty roster.
type StubProvider struct {
	Rosters    map[string][]string
	RosterErrs map[string]error
	Schedules  map[string][]games.Game
	Boxscores  map[int64][]players.Player
	Err        error
	Calls      atomic.Int32
	// Cancel, when set, is invoked once Calls reaches CancelAfter.
	Cancel      context.CancelFunc
	CancelAfter int32

	mu        sync.Mutex
	requested []string
}

func (s *StubProvider) record(key string) {
	n := s.Calls.Add(1)
	s.mu.Lock()
	s.requested = append(s.requested, key)
	s.mu.Unlock()
	if s.Cancel != nil && n >= s.CancelAfter {
		s.Cancel()
	}
}

// Requested returns the keys of every call in order.
func (s *StubProvider) Requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requested...)
}

// FetchRoster returns the configured names and error for the pair while tracking calls.
func (s *StubProvider) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	key := RosterKey(team, season)
	s.record(key)
	if s.Err != nil {
		return rosters.Roster{}, s.Err
	}
	if err := s.RosterErrs[key]; err != nil {
		return rosters.Roster{}, err
	}
	return rosters.Roster{Team: team, Season: season, Players: s.Rosters[key]}, nil
}

// FetchSchedule returns the configured schedule for the pair.
func (s *StubProvider) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	key := RosterKey(team, season)
	s.record("schedule:" + key)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Schedules[key], nil
}

// FetchBoxscore returns the configured players for the game.
func (s *StubProvider) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	s.record("boxscore:" + team)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Boxscores[gameID], nil
}

// StubDatabaseWriter is a test double for collector output writers.
type StubDatabaseWriter struct {
	Written []rosters.Database
	Err     error
}

// Write records the database unless Err is set.
func (s *StubDatabaseWriter) Write(db rosters.Database) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Written = append(s.Written, db)
	return int64(db.TotalPlayers()), nil
}
