package games

// Game is a schedule entry used to look up boxscores.
type Game struct {
	ID       int64  `json:"id"`
	Season   string `json:"season"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
}

// Involves reports whether the team played in the game.
func (g Game) Involves(team string) bool {
	return g.HomeTeam == team || g.AwayTeam == team
}

// IsAway reports whether the team was the visiting side.
func (g Game) IsAway(team string) bool {
	return g.AwayTeam == team
}

// ForTeam returns up to limit games the team played, in schedule order.
// A non-positive limit returns every matching game.
func ForTeam(schedule []Game, team string, limit int) []Game {
	var out []Game
	for _, g := range schedule {
		if !g.Involves(team) {
			continue
		}
		out = append(out, g)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
