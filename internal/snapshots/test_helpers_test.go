package snapshots

import (
	"os"
	"testing"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
)

func sampleDatabase() rosters.Database {
	return rosters.Database{
		Teams: map[string][]string{
			"BOS": {"A B", "C D"},
			"TOR": {},
		},
		GeneratedAt:    "2024-10-01T00:00:00Z",
		SeasonsCovered: []string{"20232024", "20242025"},
	}
}

func readDatabase(t *testing.T, path string) rosters.Database {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var db rosters.Database
	if err := json.Unmarshal(data, &db); err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return db
}
