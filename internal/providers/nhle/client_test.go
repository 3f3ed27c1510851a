package nhle

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
	"github.com/preston-bernstein/nhl-player-db/internal/providers"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/v1/",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchRosterHitsAPIAndMapsResponse(t *testing.T) {
	var capturedPath, capturedUA, capturedAccept string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedUA = req.Header.Get("User-Agent")
		capturedAccept = req.Header.Get("Accept")
		return jsonResponse(http.StatusOK, `{
			"forwards": [
				{"id": 1, "firstName": {"default": "David", "cs": "David"}, "lastName": {"default": "Pastrňák"}},
				{"firstName": "Brad", "lastName": "Marchand"}
			],
			"defensemen": [
				{"firstName": {"default": "Charlie"}, "lastName": {"default": "McAvoy"}},
				{"firstName": {"default": ""}, "lastName": {"default": "Nobody"}}
			],
			"goalies": [
				{"firstName": {"default": "Jeremy"}, "lastName": {"default": "Swayman"}},
				{"lastName": {"default": "Missing"}}
			]
		}`), nil
	})

	roster, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/v1/roster/BOS/20232024" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if capturedUA != "NHL Player Database Generator 1.0" || capturedAccept != "application/json" {
		t.Fatalf("unexpected headers ua=%q accept=%q", capturedUA, capturedAccept)
	}

	want := []string{"David Pastrňák", "Brad Marchand", "Charlie McAvoy", "Jeremy Swayman"}
	if strings.Join(roster.Players, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, roster.Players)
	}
	if roster.Skipped != 2 {
		t.Fatalf("expected 2 skipped entries, got %d", roster.Skipped)
	}
	if roster.Team != "BOS" || roster.Season != "20232024" {
		t.Fatalf("unexpected roster identity %+v", roster)
	}
}

func TestFetchRosterSinglePlayer(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"forwards":[{"firstName":"A","lastName":"B"}]}`), nil
	})

	roster, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2024))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(roster.Players) != 1 || roster.Players[0] != "A B" {
		t.Fatalf("expected [A B], got %v", roster.Players)
	}
}

func TestFetchRosterHandlesNon200(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, "  not here  "), nil
	})

	_, err := client.FetchRoster(context.Background(), "HFD", seasons.New(2023))
	statusErr, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Body != "not here" || statusErr.Endpoint != providers.EndpointRoster {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if !providers.IsPermanent(err) {
		t.Fatalf("expected 404 to be permanent")
	}
}

func TestFetchRosterHandlesRateLimit(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023))
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchRosterHandlesDecodeError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"forwards": [`), nil
	})

	_, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023))
	if !errors.Is(err, providers.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFetchRosterWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection reset")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023))
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error in chain, got %v", err)
	}
	if providers.IsPermanent(err) {
		t.Fatalf("expected transport errors to be retryable")
	}
}

func TestFetchRosterTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	if _, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023)); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestFetchScheduleMapsGames(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v1/club-schedule-season/BOS/20232024" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{
			"games": [
				{"id": 2023020001, "season": 20232024, "awayTeam": {"abbrev": "BOS"}, "homeTeam": {"abbrev": "CHI"}},
				{"id": 2023020015, "awayTeam": {"abbrev": "tor"}, "homeTeam": {"abbrev": "BOS"}}
			]
		}`), nil
	})

	schedule, err := client.FetchSchedule(context.Background(), "BOS", seasons.New(2023))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 games, got %d", len(schedule))
	}
	if schedule[0].ID != 2023020001 || schedule[0].AwayTeam != "BOS" || schedule[0].HomeTeam != "CHI" || schedule[0].Season != "20232024" {
		t.Fatalf("unexpected first game %+v", schedule[0])
	}
	if schedule[1].AwayTeam != "TOR" || schedule[1].Season != "20232024" {
		t.Fatalf("expected abbrev upper-cased and season defaulted, got %+v", schedule[1])
	}
}

func TestFetchBoxscorePicksTeamSide(t *testing.T) {
	body := `{
		"awayTeam": {"abbrev": "BOS", "skaters": [{"firstName": {"default": "A"}, "lastName": {"default": "B"}}], "goalies": [{"firstName": "G", "lastName": "K"}]},
		"homeTeam": {"abbrev": "CHI", "skaters": [{"firstName": "Home", "lastName": "Player"}]}
	}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v1/gamecenter/2023020001/boxscore" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, body), nil
	})

	list, err := client.FetchBoxscore(context.Background(), 2023020001, "BOS")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 2 || list[0].FullName() != "A B" || list[1].FullName() != "G K" {
		t.Fatalf("unexpected players %+v", list)
	}

	home, err := client.FetchBoxscore(context.Background(), 2023020001, "CHI")
	if err != nil || len(home) != 1 || home[0].FullName() != "Home Player" {
		t.Fatalf("unexpected home side %+v err=%v", home, err)
	}

	if _, err := client.FetchBoxscore(context.Background(), 2023020001, "TOR"); !errors.Is(err, providers.ErrMalformedResponse) {
		t.Fatalf("expected missing side error, got %v", err)
	}
}

func TestFetchBoxscoreReadsPlayerByGameStats(t *testing.T) {
	body := `{
		"awayTeam": {"abbrev": "TOR"},
		"homeTeam": {"abbrev": "MTL"},
		"playerByGameStats": {
			"awayTeam": {"forwards": [{"firstName": {"default": "Auston"}, "lastName": {"default": "Matthews"}}],
			             "defense": [{"firstName": {"default": "Morgan"}, "lastName": {"default": "Rielly"}}],
			             "goalies": [{"firstName": {"default": "Joseph"}, "lastName": {"default": "Woll"}}]},
			"homeTeam": {"forwards": [{"firstName": {"default": "Nick"}, "lastName": {"default": "Suzuki"}}]}
		}
	}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})

	list, err := client.FetchBoxscore(context.Background(), 1, "TOR")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.FullName())
	}
	if strings.Join(names, ",") != "Auston Matthews,Morgan Rielly,Joseph Woll" {
		t.Fatalf("unexpected players %v", names)
	}
}

func TestClientRecordsHTTPMetrics(t *testing.T) {
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	client := NewClient(Config{
		BaseURL: "http://example.com",
		Metrics: rec,
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{}`), nil
		})},
	})
	if _, err := client.FetchRoster(context.Background(), "BOS", seasons.New(2023)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rr.Body.String(), "nhle_http_responses_total") {
		t.Fatalf("expected http response metric in scrape")
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	client := NewClient(Config{})
	if client.baseURL != defaultBaseURL || client.userAgent != defaultUserAgent {
		t.Fatalf("unexpected defaults %+v", client)
	}
	if c, ok := client.httpClient.(*http.Client); !ok || c.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default http client with timeout")
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
