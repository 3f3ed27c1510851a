package nhle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-player-db/internal/metrics"
	"github.com/preston-bernstein/nhl-player-db/internal/providers"
)

// Config controls how the client reaches api-web.nhle.com.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Recorder
}

// Client fetches rosters, schedules and boxscores from the NHL web API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchRoster retrieves GET /roster/{team}/{season}.
func (c *Client) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	var payload rosterResponse
	path := fmt.Sprintf("/roster/%s/%s", team, season)
	if err := c.get(ctx, providers.EndpointRoster, path, &payload); err != nil {
		return rosters.Roster{}, err
	}
	return mapRoster(team, season, payload), nil
}

// FetchSchedule retrieves GET /club-schedule-season/{team}/{season}.
func (c *Client) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	var payload scheduleResponse
	path := fmt.Sprintf("/club-schedule-season/%s/%s", team, season)
	if err := c.get(ctx, providers.EndpointSchedule, path, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(season, payload), nil
}

// FetchBoxscore retrieves GET /gamecenter/{id}/boxscore and returns team's players.
func (c *Client) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	var payload boxscoreResponse
	path := "/gamecenter/" + strconv.FormatInt(gameID, 10) + "/boxscore"
	if err := c.get(ctx, providers.EndpointBoxscore, path, &payload); err != nil {
		return nil, err
	}
	side, ok := boxscoreSide(payload, team)
	if !ok {
		return nil, fmt.Errorf("%w: game %d has no side for %s", providers.ErrMalformedResponse, gameID, team)
	}
	return mapBoxscorePlayers(side), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordHTTPResponse(endpoint, resp.StatusCode, c.now().Sub(start))

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    providerName + " " + endpoint + " rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %s %s: %w", providers.ErrMalformedResponse, providerName, endpoint, err)
	}
	return nil
}
