package teams

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownTeam is returned when a requested code is not a current franchise.
var ErrUnknownTeam = errors.New("unknown team code")

var current = []Team{
	{Abbreviation: "ANA", FullName: "Anaheim Ducks"},
	{Abbreviation: "BOS", FullName: "Boston Bruins"},
	{Abbreviation: "BUF", FullName: "Buffalo Sabres"},
	{Abbreviation: "CGY", FullName: "Calgary Flames"},
	{Abbreviation: "CAR", FullName: "Carolina Hurricanes"},
	{Abbreviation: "CHI", FullName: "Chicago Blackhawks"},
	{Abbreviation: "COL", FullName: "Colorado Avalanche"},
	{Abbreviation: "CBJ", FullName: "Columbus Blue Jackets"},
	{Abbreviation: "DAL", FullName: "Dallas Stars"},
	{Abbreviation: "DET", FullName: "Detroit Red Wings"},
	{Abbreviation: "EDM", FullName: "Edmonton Oilers"},
	{Abbreviation: "FLA", FullName: "Florida Panthers"},
	{Abbreviation: "LAK", FullName: "Los Angeles Kings"},
	{Abbreviation: "MIN", FullName: "Minnesota Wild"},
	{Abbreviation: "MTL", FullName: "Montreal Canadiens"},
	{Abbreviation: "NSH", FullName: "Nashville Predators"},
	{Abbreviation: "NJD", FullName: "New Jersey Devils"},
	{Abbreviation: "NYI", FullName: "New York Islanders"},
	{Abbreviation: "NYR", FullName: "New York Rangers"},
	{Abbreviation: "OTT", FullName: "Ottawa Senators"},
	{Abbreviation: "PHI", FullName: "Philadelphia Flyers"},
	{Abbreviation: "PIT", FullName: "Pittsburgh Penguins"},
	{Abbreviation: "SJS", FullName: "San Jose Sharks"},
	{Abbreviation: "SEA", FullName: "Seattle Kraken"},
	{Abbreviation: "STL", FullName: "St. Louis Blues"},
	{Abbreviation: "TBL", FullName: "Tampa Bay Lightning"},
	{Abbreviation: "TOR", FullName: "Toronto Maple Leafs"},
	{Abbreviation: "UTA", FullName: "Utah Hockey Club"},
	{Abbreviation: "VAN", FullName: "Vancouver Canucks"},
	{Abbreviation: "VGK", FullName: "Vegas Golden Knights"},
	{Abbreviation: "WSH", FullName: "Washington Capitals"},
	{Abbreviation: "WPG", FullName: "Winnipeg Jets"},
}

// Relocated and renamed franchises, filed under the current code.
var historical = []Team{
	{Abbreviation: "ATL", FullName: "Atlanta Thrashers", Historical: true, Successor: "WPG"},
	{Abbreviation: "HFD", FullName: "Hartford Whalers", Historical: true, Successor: "CAR"},
	{Abbreviation: "QUE", FullName: "Quebec Nordiques", Historical: true, Successor: "COL"},
	{Abbreviation: "MNS", FullName: "Minnesota North Stars", Historical: true, Successor: "DAL"},
	{Abbreviation: "CLR", FullName: "Colorado Rockies", Historical: true, Successor: "NJD"},
	{Abbreviation: "KCS", FullName: "Kansas City Scouts", Historical: true, Successor: "NJD"},
	{Abbreviation: "ATF", FullName: "Atlanta Flames", Historical: true, Successor: "CGY"},
	{Abbreviation: "WPG1", FullName: "Winnipeg Jets (1979)", Historical: true, Successor: "UTA"},
	{Abbreviation: "PHX", FullName: "Phoenix Coyotes", Historical: true, Successor: "UTA"},
	{Abbreviation: "ARI", FullName: "Arizona Coyotes", Historical: true, Successor: "UTA"},
	{Abbreviation: "MIG", FullName: "Mighty Ducks of Anaheim", Historical: true, Successor: "ANA"},
}

// Current returns the active franchises.
func Current() []Team {
	return append([]Team(nil), current...)
}

// Historical returns the relocated or renamed franchise codes.
func Historical() []Team {
	return append([]Team(nil), historical...)
}

// All returns current codes followed by historical codes, the order the sweep visits them.
func All() []Team {
	out := make([]Team, 0, len(current)+len(historical))
	out = append(out, current...)
	return append(out, historical...)
}

// Lookup finds a team by code, case-insensitively.
func Lookup(code string) (Team, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, t := range All() {
		if t.Abbreviation == code {
			return t, true
		}
	}
	return Team{}, false
}

// Resolve maps any known code to the current franchise code.
func Resolve(code string) (string, bool) {
	t, ok := Lookup(code)
	if !ok {
		return "", false
	}
	return t.Consolidated(), true
}

// Select returns the teams to sweep for the requested current codes: the current teams
// themselves plus every historical code that consolidates into them. An empty request
// selects everything.
func Select(codes []string) ([]Team, error) {
	if len(codes) == 0 {
		return All(), nil
	}

	wanted := make(map[string]struct{}, len(codes))
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		t, ok := Lookup(code)
		if !ok || t.Historical {
			return nil, unknownTeamError(raw)
		}
		wanted[code] = struct{}{}
	}
	if len(wanted) == 0 {
		return All(), nil
	}

	var out []Team
	for _, t := range All() {
		if _, ok := wanted[t.Consolidated()]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// ConsolidatedCodes returns the distinct output codes for the given teams in sweep order.
func ConsolidatedCodes(selected []Team) []string {
	seen := make(map[string]struct{}, len(selected))
	var out []string
	for _, t := range selected {
		code := t.Consolidated()
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func unknownTeamError(raw string) error {
	suggestions := Suggest(raw)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, raw)
	}
	return fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownTeam, raw, strings.Join(suggestions, ", "))
}

// Suggest returns current codes whose code or full name resembles the query, best first.
func Suggest(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	names := make([]string, len(current))
	for i, t := range current {
		names[i] = t.FullName
	}

	type candidate struct {
		code     string
		distance int
	}
	best := make(map[string]int)
	add := func(code string, distance int) {
		if d, ok := best[code]; !ok || distance < d {
			best[code] = distance
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	for _, r := range ranks {
		add(current[r.OriginalIndex].Abbreviation, r.Distance)
	}

	upper := strings.ToUpper(query)
	for _, t := range current {
		if d := fuzzy.LevenshteinDistance(upper, t.Abbreviation); d <= 1 {
			add(t.Abbreviation, d)
		}
	}

	candidates := make([]candidate, 0, len(best))
	for code, d := range best {
		candidates = append(candidates, candidate{code: code, distance: d})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].code < candidates[j].code
	})

	const maxSuggestions = 3
	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.code)
	}
	return out
}
