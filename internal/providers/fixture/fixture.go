package fixture

import (
	"context"
	"hash/fnv"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/teams"
)

const (
	rosterSize    = 6
	gamesPerTeam  = 3
	gameIDYearMul = 1_000_000
)

var (
	firstNames = []string{"Alex", "Brady", "Connor", "Dylan", "Evan", "Filip", "Gabriel", "Henrik", "Ilya", "Jack", "Kirill", "Logan", "Mikko", "Nico", "Owen", "Patrik"}
	lastNames  = []string{"Anders", "Bergeron", "Carlson", "Dahlin", "Ekblad", "Forsberg", "Gaudreau", "Hughes", "Iginla", "Jarry", "Kopitar", "Larkin", "Makar", "Nylander", "Oshie", "Pietrangelo", "Quick"}
)

// Provider serves deterministic rosters, schedules and boxscores for offline runs.
// Consecutive seasons share most of a team's roster so deduplication has work to do.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchRoster returns a generated roster. Historical codes have no players.
func (p *Provider) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	if err := ctx.Err(); err != nil {
		return rosters.Roster{}, err
	}
	return rosters.Roster{
		Team:    team,
		Season:  season,
		Players: namesFor(team, season.StartYear()),
	}, nil
}

// FetchSchedule returns a few games against the next teams in the registry.
func (p *Provider) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	current := teams.Current()
	idx := -1
	for i, t := range current {
		if t.Abbreviation == team {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	out := make([]games.Game, 0, gamesPerTeam)
	for k := 1; k <= gamesPerTeam; k++ {
		opponent := current[(idx+k)%len(current)].Abbreviation
		g := games.Game{
			ID:       int64(season.StartYear())*gameIDYearMul + int64(idx*100+k),
			Season:   season.String(),
			HomeTeam: team,
			AwayTeam: opponent,
		}
		if k%2 == 0 {
			g.HomeTeam, g.AwayTeam = opponent, team
		}
		out = append(out, g)
	}
	return out, nil
}

// FetchBoxscore returns the team's generated roster for the season encoded in the game id,
// plus one call-up who never appears on a roster.
func (p *Provider) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	year := int(gameID / gameIDYearMul)
	out := playersFor(team, year)
	out = append(out, players.Player{FirstName: "Callup", LastName: team, Group: players.GroupForwards})
	return out, nil
}

func namesFor(team string, year int) []string {
	names, _ := players.Names(playersFor(team, year))
	return names
}

func playersFor(team string, year int) []players.Player {
	t, ok := teams.Lookup(team)
	if !ok || t.Historical {
		return nil
	}
	h := hash(team)
	out := make([]players.Player, 0, rosterSize)
	for k := 0; k < rosterSize; k++ {
		slot := h + uint32(year) + uint32(k)
		out = append(out, players.Player{
			FirstName: firstNames[slot%uint32(len(firstNames))],
			LastName:  lastNames[slot%uint32(len(lastNames))],
			Group:     groupFor(k),
		})
	}
	return out
}

func groupFor(slot int) string {
	switch {
	case slot < 3:
		return players.GroupForwards
	case slot < 5:
		return players.GroupDefensemen
	default:
		return players.GroupGoalies
	}
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
