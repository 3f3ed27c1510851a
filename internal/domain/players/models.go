package players

import "strings"

// Position groups as the roster endpoint splits them.
const (
	GroupForwards   = "forwards"
	GroupDefensemen = "defensemen"
	GroupGoalies    = "goalies"
)

// Player is a normalized roster entry.
type Player struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Group     string `json:"group"`
}

// FullName joins first and last names with a single space.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName)
}

// Valid reports whether both name parts are present.
func (p Player) Valid() bool {
	return strings.TrimSpace(p.FirstName) != "" && strings.TrimSpace(p.LastName) != ""
}

// Names returns full names of valid players in order and the count of invalid entries.
func Names(list []Player) ([]string, int) {
	names := make([]string, 0, len(list))
	skipped := 0
	for _, p := range list {
		if !p.Valid() {
			skipped++
			continue
		}
		names = append(names, p.FullName())
	}
	return names, skipped
}
