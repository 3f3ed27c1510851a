package rosters

import (
	"sort"
	"time"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/timeutil"
)

// Roster is one (team, season) batch of player names as returned upstream.
type Roster struct {
	Team    string     `json:"team"`
	Season  seasons.ID `json:"season"`
	Players []string   `json:"players"`
	Skipped int        `json:"skipped"`
}

// Database is the document written at the end of a run.
type Database struct {
	Teams          map[string][]string `json:"teams"`
	GeneratedAt    string              `json:"generated_at"`
	SeasonsCovered []string            `json:"seasons_covered"`
}

// NewDatabase builds the output document. Team name lists are copied and sorted.
func NewDatabase(teams map[string][]string, generatedAt time.Time, covered []string) Database {
	out := make(map[string][]string, len(teams))
	for team, names := range teams {
		list := append([]string{}, names...)
		sort.Strings(list)
		out[team] = list
	}
	if covered == nil {
		covered = []string{}
	}
	return Database{
		Teams:          out,
		GeneratedAt:    timeutil.FormatTimestamp(generatedAt),
		SeasonsCovered: append([]string{}, covered...),
	}
}

// TotalPlayers sums names across teams. A player on several teams counts once per team.
func (d Database) TotalPlayers() int {
	total := 0
	for _, names := range d.Teams {
		total += len(names)
	}
	return total
}
