package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the overridable subset of Config. Durations are
// strings in the file ("90s", "2m") and parsed on overlay.
type fileConfig struct {
	Port         string `yaml:"port"`
	PollInterval string `yaml:"poll_interval"`
	Provider     string `yaml:"provider"`

	Upstream struct {
		NBABaseURL  string `yaml:"nba_base_url"`
		OddsURL     string `yaml:"odds_url"`
		ESPNBaseURL string `yaml:"espn_base_url"`
		Season      string `yaml:"season"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"upstream"`

	Schedule struct {
		DaysBefore   int    `yaml:"days_before"`
		DaysAfter    int    `yaml:"days_after"`
		Timezone     string `yaml:"timezone"`
		PaceInterval string `yaml:"pace_interval"`
	} `yaml:"schedule"`

	Proxy struct {
		Port        string `yaml:"port"`
		UpstreamURL string `yaml:"upstream_url"`
	} `yaml:"proxy"`
}

// applyFile overlays non-empty file values onto cfg. Errors leave cfg
// untouched so a broken file degrades to environment configuration.
func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	setString(&cfg.Port, fc.Port)
	setString(&cfg.Provider, fc.Provider)
	setDuration(&cfg.PollInterval, fc.PollInterval)

	setString(&cfg.Upstream.NBABaseURL, fc.Upstream.NBABaseURL)
	setString(&cfg.Upstream.OddsURL, fc.Upstream.OddsURL)
	setString(&cfg.Upstream.ESPNBaseURL, fc.Upstream.ESPNBaseURL)
	setString(&cfg.Upstream.Season, fc.Upstream.Season)
	setDuration(&cfg.Upstream.Timeout, fc.Upstream.Timeout)

	if fc.Schedule.DaysBefore > 0 {
		cfg.Schedule.DaysBefore = fc.Schedule.DaysBefore
	}
	if fc.Schedule.DaysAfter > 0 {
		cfg.Schedule.DaysAfter = fc.Schedule.DaysAfter
	}
	setString(&cfg.Schedule.Timezone, fc.Schedule.Timezone)
	setDuration(&cfg.Schedule.PaceInterval, fc.Schedule.PaceInterval)

	setString(&cfg.Proxy.Port, fc.Proxy.Port)
	setString(&cfg.Proxy.UpstreamURL, fc.Proxy.UpstreamURL)
}

func setString(dest *string, val string) {
	if val != "" {
		*dest = val
	}
}

func setDuration(dest *Duration, raw string) {
	if raw == "" {
		return
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return
	}
	*dest = parsed
}
