package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Upstream     UpstreamConfig
	Schedule     ScheduleConfig
	Proxy        ProxyConfig
	Metrics      MetricsConfig
}

// UpstreamConfig points at the third-party feeds.
type UpstreamConfig struct {
	NBABaseURL  string
	OddsURL     string
	ESPNBaseURL string
	Season      string
	Timeout     Duration
}

// ScheduleConfig tunes the date-window aggregation.
type ScheduleConfig struct {
	DaysBefore   int
	DaysAfter    int
	Timezone     string
	PaceInterval Duration
}

// ProxyConfig configures the CORS pass-through binary.
type ProxyConfig struct {
	Port        string
	UpstreamURL string
}

// Load reads configuration from environment variables with sensible
// defaults, then overlays the optional YAML file named by CONFIG_FILE.
// An unreadable or invalid file leaves the environment values in place.
func Load() Config {
	cfg := Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Upstream:     loadUpstream(),
		Schedule:     loadSchedule(),
		Proxy:        loadProxy(),
		Metrics:      loadMetrics(),
	}

	if path := os.Getenv(envConfigFile); path != "" {
		applyFile(&cfg, path)
	}

	return cfg
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		NBABaseURL:  envOrDefault(envNBABaseURL, ""),
		OddsURL:     envOrDefault(envOddsURL, ""),
		ESPNBaseURL: envOrDefault(envESPNBaseURL, ""),
		Season:      envOrDefault(envSeason, ""),
		Timeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}

func loadSchedule() ScheduleConfig {
	return ScheduleConfig{
		DaysBefore:   intEnvOrDefault(envScheduleDaysBefore, defaultScheduleDaysBefore),
		DaysAfter:    intEnvOrDefault(envScheduleDaysAfter, defaultScheduleDaysAfter),
		Timezone:     envOrDefault(envScheduleTimezone, defaultScheduleTimezone),
		PaceInterval: durationEnvOrDefault(envSchedulePace, 0),
	}
}

func loadProxy() ProxyConfig {
	return ProxyConfig{
		Port:        envOrDefault(envProxyPort, defaultProxyPort),
		UpstreamURL: envOrDefault(envProxyUpstream, defaultProxyUpstream),
	}
}
