package snapshots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
)

// Writer persists the player database to a single JSON file.
type Writer struct {
	path string
}

// NewWriter constructs a writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path exposes the target file.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Write serializes db and replaces the target file atomically. It returns the bytes written.
func (w *Writer) Write(db rosters.Database) (int64, error) {
	if w == nil {
		return 0, errors.New("snapshot writer not configured")
	}
	if w.path == "" {
		return 0, errors.New("output path required")
	}

	if db.Teams == nil {
		db.Teams = map[string][]string{}
	}
	if db.SeasonsCovered == nil {
		db.SeasonsCovered = []string{}
	}

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode database: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("replace %s: %w", w.path, err)
	}
	return int64(len(data)), nil
}
