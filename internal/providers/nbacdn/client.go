package nbacdn

import (
	"context"
	"encoding/json"
	"net/http"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/providers"
)

// Config controls how the client reaches the CDN feeds.
type Config struct {
	BaseURL    string
	OddsURL    string
	HTTPClient *http.Client
	Metrics    *metrics.Recorder
}

// Client fetches the CDN scoreboard and odds feeds and maps them to domain
// models. Each call makes exactly one network attempt; retry policy belongs
// to the caller.
type Client struct {
	baseURL    string
	oddsURL    string
	httpClient httpDoer
	metrics    *metrics.Recorder
}

// NewClient constructs a CDN client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		metrics:    cfg.Metrics,
	}
	c.oddsURL = cfg.OddsURL
	if c.oddsURL == "" {
		c.oddsURL = c.baseURL + oddsPath
	}
	return c
}

// FetchScoreboard retrieves today's games from the live scoreboard feed.
func (c *Client) FetchScoreboard(ctx context.Context) ([]domaingames.Game, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.baseURL+scoreboardPath, resourceScoreboard, &payload); err != nil {
		return nil, err
	}

	games, dropped := mapScoreboard(payload)
	c.metrics.RecordDroppedRecords(resourceScoreboard, dropped)
	return games, nil
}

// FetchOdds retrieves today's betting lines keyed by game ID.
func (c *Client) FetchOdds(ctx context.Context) (map[string]odds.Line, error) {
	var payload oddsResponse
	if err := c.getJSON(ctx, c.oddsURL, resourceOdds, &payload); err != nil {
		return nil, err
	}

	lines, dropped := mapOdds(payload)
	c.metrics.RecordDroppedRecords(resourceOdds, dropped)
	return lines, nil
}

func (c *Client) getJSON(ctx context.Context, url, resource string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return providers.NetworkError(resource, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.NetworkError(resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return providers.HTTPError(resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return providers.DecodeError(resource, err)
	}
	return nil
}
