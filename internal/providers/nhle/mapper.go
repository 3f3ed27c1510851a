package nhle

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

func mapRoster(team string, season seasons.ID, payload rosterResponse) rosters.Roster {
	var list []players.Player
	list = appendPlayers(list, payload.Forwards, players.GroupForwards)
	list = appendPlayers(list, payload.Defensemen, players.GroupDefensemen)
	list = appendPlayers(list, payload.Goalies, players.GroupGoalies)

	names, skipped := players.Names(list)
	return rosters.Roster{
		Team:    team,
		Season:  season,
		Players: names,
		Skipped: skipped,
	}
}

func appendPlayers(dst []players.Player, src []playerResponse, group string) []players.Player {
	for _, p := range src {
		dst = append(dst, mapPlayer(p, group))
	}
	return dst
}

func mapPlayer(p playerResponse, group string) players.Player {
	return players.Player{
		FirstName: strings.TrimSpace(string(p.FirstName)),
		LastName:  strings.TrimSpace(string(p.LastName)),
		Group:     group,
	}
}

func mapSchedule(season seasons.ID, payload scheduleResponse) []games.Game {
	out := make([]games.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		gameSeason := season.String()
		if g.Season > 0 {
			gameSeason = strconv.FormatInt(g.Season, 10)
		}
		out = append(out, games.Game{
			ID:       g.ID,
			Season:   gameSeason,
			HomeTeam: strings.ToUpper(g.HomeTeam.Abbrev),
			AwayTeam: strings.ToUpper(g.AwayTeam.Abbrev),
		})
	}
	return out
}

// boxscoreSide picks the team's side of a boxscore. ok is false when neither side matches.
func boxscoreSide(payload boxscoreResponse, team string) (*boxscoreTeam, bool) {
	var awayStats, homeStats *boxscoreTeam
	if payload.PlayerByGameStats != nil {
		awayStats, homeStats = payload.PlayerByGameStats.AwayTeam, payload.PlayerByGameStats.HomeTeam
	}

	switch {
	case payload.AwayTeam != nil && strings.EqualFold(payload.AwayTeam.Abbrev, team):
		return mergeSides(payload.AwayTeam, awayStats), true
	case payload.HomeTeam != nil && strings.EqualFold(payload.HomeTeam.Abbrev, team):
		return mergeSides(payload.HomeTeam, homeStats), true
	default:
		return nil, false
	}
}

func mergeSides(top, stats *boxscoreTeam) *boxscoreTeam {
	if stats == nil {
		return top
	}
	merged := *top
	merged.Skaters = append(append([]playerResponse{}, top.Skaters...), stats.Skaters...)
	merged.Forwards = append(append([]playerResponse{}, top.Forwards...), stats.Forwards...)
	merged.Defense = append(append([]playerResponse{}, top.Defense...), stats.Defense...)
	merged.Goalies = append(append([]playerResponse{}, top.Goalies...), stats.Goalies...)
	return &merged
}

func mapBoxscorePlayers(side *boxscoreTeam) []players.Player {
	if side == nil {
		return nil
	}
	var list []players.Player
	list = appendPlayers(list, side.Skaters, "")
	list = appendPlayers(list, side.Forwards, players.GroupForwards)
	list = appendPlayers(list, side.Defense, players.GroupDefensemen)
	list = appendPlayers(list, side.Goalies, players.GroupGoalies)
	return list
}
