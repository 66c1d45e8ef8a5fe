package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/players"
	"nba-companion-service/internal/domain/teams"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/providers"
)

// Config controls how the client reaches the ESPN site API.
type Config struct {
	BaseURL    string
	Season     string
	HTTPClient *http.Client
	Metrics    *metrics.Recorder
}

// Client fetches the ESPN site API feeds and maps them to domain models.
// Each call makes exactly one network attempt; retry policy belongs to the
// caller.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer
	metrics    *metrics.Recorder
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     cfg.Season,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		metrics:    cfg.Metrics,
	}
}

// FetchTeams retrieves the full team directory.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	u := c.leagueURL("/teams")
	if c.season != "" {
		u += "?season=" + url.QueryEscape(c.season)
	}

	var payload teamsResponse
	if err := c.getJSON(ctx, u, resourceTeams, &payload); err != nil {
		return nil, err
	}

	list, dropped := mapTeams(payload)
	c.metrics.RecordDroppedRecords(resourceTeams, dropped)
	return list, nil
}

// FetchTeam retrieves one team with record and standing detail.
func (c *Client) FetchTeam(ctx context.Context, teamID string) (teams.Team, error) {
	var payload teamDetailResponse
	if err := c.getJSON(ctx, c.leagueURL("/teams/"+url.PathEscape(teamID)), resourceTeamDetail, &payload); err != nil {
		return teams.Team{}, err
	}
	return mapTeamDetail(payload.Team), nil
}

// FetchRoster retrieves a team's roster.
func (c *Client) FetchRoster(ctx context.Context, teamID string) ([]players.Player, error) {
	team, err := c.FetchTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var payload rosterResponse
	if err := c.getJSON(ctx, c.leagueURL("/teams/"+url.PathEscape(teamID)+"/roster"), resourceRoster, &payload); err != nil {
		return nil, err
	}

	roster, dropped := mapRoster(payload, team)
	c.metrics.RecordDroppedRecords(resourceRoster, dropped)
	return roster, nil
}

// FetchGamesByDate retrieves normalized games for one YYYYMMDD date token.
func (c *Client) FetchGamesByDate(ctx context.Context, date string) ([]domaingames.Game, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.leagueURL("/scoreboard?dates="+url.QueryEscape(date)), resourceScoreboard, &payload); err != nil {
		return nil, err
	}

	games, dropped := mapEvents(payload.Events)
	c.metrics.RecordDroppedRecords(resourceScoreboard, dropped)
	return games, nil
}

// FetchGameSummary retrieves one game by its event ID.
func (c *Client) FetchGameSummary(ctx context.Context, eventID string) (domaingames.Game, error) {
	var payload summaryResponse
	if err := c.getJSON(ctx, c.leagueURL("/summary?event="+url.QueryEscape(eventID)), resourceSummary, &payload); err != nil {
		return domaingames.Game{}, err
	}
	return mapSummary(payload)
}

// FetchNews retrieves the league news feed.
func (c *Client) FetchNews(ctx context.Context) ([]news.Article, error) {
	var payload newsResponse
	if err := c.getJSON(ctx, c.leagueURL("/news"), resourceNews, &payload); err != nil {
		return nil, err
	}

	articles, dropped := mapArticles(payload)
	c.metrics.RecordDroppedRecords(resourceNews, dropped)
	return articles, nil
}

func (c *Client) leagueURL(path string) string {
	return c.baseURL + leaguePath + path
}

func (c *Client) getJSON(ctx context.Context, url, resource string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return providers.NetworkError(resource, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

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
