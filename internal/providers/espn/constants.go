package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	leaguePath         = "/basketball/nba"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "nba-companion-service/1.0"

	resourceTeams      = "espn teams"
	resourceTeamDetail = "espn team"
	resourceRoster     = "espn roster"
	resourceScoreboard = "espn scoreboard"
	resourceSummary    = "espn summary"
	resourceNews       = "espn news"
)
