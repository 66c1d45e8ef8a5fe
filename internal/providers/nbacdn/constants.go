package nbacdn

import "time"

const providerName = "nbacdn"

const (
	defaultBaseURL     = "https://cdn.nba.com/static/json"
	scoreboardPath     = "/liveData/scoreboard/todaysScoreboard_00.json"
	oddsPath           = "/liveData/odds/odds_todaysGames.json"
	defaultHTTPTimeout = 10 * time.Second

	resourceScoreboard = "nbacdn scoreboard"
	resourceOdds       = "nbacdn odds"
)
