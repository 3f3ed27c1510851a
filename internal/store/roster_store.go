package store

import (
	"sort"
	"sync"
)

// RosterStore accumulates deduplicated player names per team.
type RosterStore struct {
	mu    sync.RWMutex
	teams map[string]map[string]struct{}
	order []string
}

// NewRosterStore constructs an empty RosterStore.
func NewRosterStore() *RosterStore {
	return &RosterStore{
		teams: make(map[string]map[string]struct{}),
	}
}

// Register makes the team appear in snapshots even if no names are ever added.
func (s *RosterStore) Register(teams ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, team := range teams {
		s.ensure(team)
	}
}

// Add merges names into the team's set and returns how many were new.
// Empty names are ignored.
func (s *RosterStore) Add(team string, names []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ensure(team)
	added := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := set[name]; ok {
			continue
		}
		set[name] = struct{}{}
		added++
	}
	return added
}

// Contains reports whether the team already holds the name.
func (s *RosterStore) Contains(team, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.teams[team][name]
	return ok
}

// Players returns the team's names sorted alphabetically.
func (s *RosterStore) Players(team string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedNames(s.teams[team])
}

// Teams returns the registered team codes in registration order.
func (s *RosterStore) Teams() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}

// Snapshot returns a copy of every team's sorted names.
func (s *RosterStore) Snapshot() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.teams))
	for team, set := range s.teams {
		out[team] = sortedNames(set)
	}
	return out
}

// Count returns the number of names summed across teams.
func (s *RosterStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, set := range s.teams {
		total += len(set)
	}
	return total
}

func (s *RosterStore) ensure(team string) map[string]struct{} {
	set, ok := s.teams[team]
	if !ok {
		set = make(map[string]struct{})
		s.teams[team] = set
		s.order = append(s.order, team)
	}
	return set
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
