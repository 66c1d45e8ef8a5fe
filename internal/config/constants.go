package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envConfigFile   = "CONFIG_FILE"

	envNBABaseURL  = "NBA_CDN_BASE_URL"
	envOddsURL     = "NBA_ODDS_URL"
	envESPNBaseURL = "ESPN_BASE_URL"
	envSeason      = "ESPN_SEASON"
	envHTTPTimeout = "HTTP_TIMEOUT"

	envScheduleDaysBefore = "SCHEDULE_DAYS_BEFORE"
	envScheduleDaysAfter  = "SCHEDULE_DAYS_AFTER"
	envScheduleTimezone   = "SCHEDULE_TIMEZONE"
	envSchedulePace       = "SCHEDULE_PACE_INTERVAL"

	envProxyPort     = "PROXY_PORT"
	envProxyUpstream = "PROXY_UPSTREAM_URL"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultPollInterval = time.Minute
	defaultProvider     = "live"
	defaultHTTPTimeout  = 10 * time.Second

	// Window defaults match the schedule screen: two trailing days, five
	// leading days (today inclusive). Dates roll over on US Eastern time,
	// where the league schedules its calendar.
	defaultScheduleDaysBefore = 2
	defaultScheduleDaysAfter  = 5
	defaultScheduleTimezone   = "America/New_York"

	defaultProxyPort     = "3000"
	defaultProxyUpstream = "https://cdn.nba.com/static/json/liveData/odds/odds_todaysGames.json"
	defaultMetricsPort   = "9090"
)
