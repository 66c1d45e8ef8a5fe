package server

import (
	"log/slog"
	"net/http"

	"nba-companion-service/internal/config"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/providers"
	"nba-companion-service/internal/providers/espn"
	"nba-companion-service/internal/providers/fixture"
	"nba-companion-service/internal/providers/nbacdn"
)

// providerSet bundles one provider per upstream contract.
type providerSet struct {
	scoreboard providers.ScoreboardProvider
	odds       providers.OddsProvider
	dated      providers.DatedGamesProvider
	teams      providers.TeamProvider
	roster     providers.RosterProvider
	news       providers.NewsProvider
}

// buildProviders assembles the provider set named by cfg.Provider. Unknown
// names fall back to the live clients.
func buildProviders(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providerSet {
	if cfg.Provider == "fixture" {
		fp := fixture.New()
		return providerSet{
			scoreboard: fp,
			odds:       fp,
			dated:      fp,
			teams:      fp,
			roster:     fp,
			news:       fp,
		}
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	cdn := nbacdn.NewClient(nbacdn.Config{
		BaseURL:    cfg.Upstream.NBABaseURL,
		OddsURL:    cfg.Upstream.OddsURL,
		HTTPClient: httpClient,
		Metrics:    recorder,
	})
	site := espn.NewClient(espn.Config{
		BaseURL:    cfg.Upstream.ESPNBaseURL,
		Season:     cfg.Upstream.Season,
		HTTPClient: httpClient,
		Metrics:    recorder,
	})

	set := providerSet{
		scoreboard: providers.NewRetryingScoreboard(cdn, logger, 0, 0),
		odds:       cdn,
		dated:      site,
		teams:      site,
		roster:     site,
		news:       site,
	}

	if cfg.Schedule.PaceInterval > 0 {
		set.dated = providers.NewRateLimitedDatedGames(site, cfg.Schedule.PaceInterval, logger)
	}

	return set
}
