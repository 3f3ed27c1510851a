package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// FakeNHL is an httptest server speaking the roster endpoint of api-web.nhle.com.
// Rosters are keyed "TEAM/SEASON"; Failures maps the same keys to a status code.
type FakeNHL struct {
	*httptest.Server

	mu        sync.Mutex
	rosters   map[string][]string
	failures  map[string]int
	requests  []string
	userAgent string
}

// NewFakeNHL starts the server and closes it when the test ends.
func NewFakeNHL(t *testing.T, rosters map[string][]string, failures map[string]int) *FakeNHL {
	t.Helper()
	f := &FakeNHL{rosters: rosters, failures: failures}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// BaseURL returns the API root to use as the client base URL.
func (f *FakeNHL) BaseURL() string {
	return f.Server.URL + "/v1"
}

// Requests returns the "TEAM/SEASON" keys requested so far.
func (f *FakeNHL) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// UserAgent returns the User-Agent of the last request.
func (f *FakeNHL) UserAgent() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userAgent
}

func (f *FakeNHL) serve(w http.ResponseWriter, r *http.Request) {
	key, ok := strings.CutPrefix(r.URL.Path, "/v1/roster/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.userAgent = r.Header.Get("User-Agent")
	status := f.failures[key]
	names := f.rosters[key]
	f.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	type name struct {
		Default string `json:"default"`
	}
	type entry struct {
		FirstName name `json:"firstName"`
		LastName  name `json:"lastName"`
	}
	forwards := make([]entry, 0, len(names))
	for _, full := range names {
		first, last, _ := strings.Cut(full, " ")
		forwards = append(forwards, entry{FirstName: name{first}, LastName: name{last}})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"forwards":   forwards,
		"defensemen": []entry{},
		"goalies":    []entry{},
	})
}
