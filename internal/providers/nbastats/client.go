package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"garu-data-service/internal/providers"
)

// Config controls how the stats.nba.com client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches league, position and career tables from stats.nba.com.
// It does not pace itself; wrap it with providers.NewThrottledProvider.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchLeagueStats returns every player's per-game line for the season.
// An empty table is reported as unavailable since the upstream truncates under load.
func (c *Client) FetchLeagueStats(ctx context.Context, season string) ([]providers.RawStatRow, error) {
	q := url.Values{}
	q.Set("LeagueID", leagueID)
	q.Set("Season", season)
	q.Set("SeasonType", regularSeason)
	q.Set("PerMode", "PerGame")
	q.Set("MeasureType", "Base")
	q.Set("PaceAdjust", "N")
	q.Set("PlusMinus", "N")
	q.Set("Rank", "N")
	q.Set("LastNGames", "0")
	q.Set("Month", "0")
	q.Set("OpponentTeamID", "0")
	q.Set("Period", "0")
	q.Set("TeamID", "0")

	set, err := c.fetchTable(ctx, endpointLeagueStats, q, "")
	if err != nil {
		return nil, err
	}
	if err := set.hasColumns("PLAYER_ID", "PLAYER_NAME", "PTS"); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", providers.ErrUpstreamUnavailable, endpointLeagueStats, err)
	}
	rows := mapLeagueRows(set)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s returned no rows for %s", providers.ErrUpstreamUnavailable, endpointLeagueStats, season)
	}
	return rows, nil
}

// FetchPlayerPositions returns the provider's coarse position code (G, F, C, G-F, ...) per player id.
func (c *Client) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	q := url.Values{}
	q.Set("LeagueID", leagueID)
	q.Set("Season", season)
	q.Set("Historical", "0")

	set, err := c.fetchTable(ctx, endpointPlayerIndex, q, "")
	if err != nil {
		return nil, err
	}
	if err := set.hasColumns("PERSON_ID", "POSITION"); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", providers.ErrUpstreamUnavailable, endpointPlayerIndex, err)
	}
	return mapPositions(set), nil
}

// FetchCareerRows returns the player's regular-season rows in chronological order,
// including the provider's combined rows for traded seasons.
func (c *Client) FetchCareerRows(ctx context.Context, playerID int64) ([]providers.CareerRow, error) {
	q := url.Values{}
	q.Set("LeagueID", leagueID)
	q.Set("PerMode", "Totals")
	q.Set("PlayerID", strconv.FormatInt(playerID, 10))

	set, err := c.fetchTable(ctx, endpointCareerStats, q, careerResultSet)
	if err != nil {
		return nil, err
	}
	return mapCareerRows(set), nil
}

func (c *Client) fetchTable(ctx context.Context, endpoint string, query url.Values, name string) (resultSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return resultSet{}, fmt.Errorf("%w: %s: %w", providers.ErrUpstreamUnavailable, endpoint, err)
	}
	req.URL.RawQuery = query.Encode()
	applyHeaders(req, c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resultSet{}, fmt.Errorf("%w: %s: %w", providers.ErrUpstreamUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return resultSet{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    endpoint + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resultSet{}, fmt.Errorf("%w: %s: unexpected status %d: %s",
			providers.ErrUpstreamUnavailable, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return resultSet{}, fmt.Errorf("%w: %s: decode: %w", providers.ErrUpstreamUnavailable, endpoint, err)
	}
	set, err := payload.table(name)
	if err != nil {
		return resultSet{}, fmt.Errorf("%w: %s: %v", providers.ErrUpstreamUnavailable, endpoint, err)
	}
	return set, nil
}
