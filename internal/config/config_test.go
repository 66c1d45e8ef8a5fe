package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PollInterval != time.Minute {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.Provider != "live" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.Schedule.DaysBefore != 2 || cfg.Schedule.DaysAfter != 5 {
		t.Fatalf("unexpected window %d/%d", cfg.Schedule.DaysBefore, cfg.Schedule.DaysAfter)
	}
	if cfg.Schedule.Timezone != "America/New_York" {
		t.Fatalf("unexpected schedule timezone %q", cfg.Schedule.Timezone)
	}
	if cfg.Upstream.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Upstream.Timeout)
	}
	if cfg.Proxy.Port != "3000" {
		t.Fatalf("unexpected proxy port %q", cfg.Proxy.Port)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "90s")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("SCHEDULE_DAYS_BEFORE", "1")
	t.Setenv("SCHEDULE_DAYS_AFTER", "3")
	t.Setenv("NBA_ODDS_URL", "http://localhost:3000/api/nba/games")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PollInterval != 90*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.Schedule.DaysBefore != 1 || cfg.Schedule.DaysAfter != 3 {
		t.Fatalf("unexpected window %d/%d", cfg.Schedule.DaysBefore, cfg.Schedule.DaysAfter)
	}
	if cfg.Upstream.OddsURL != "http://localhost:3000/api/nba/games" {
		t.Fatalf("unexpected odds url %q", cfg.Upstream.OddsURL)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	t.Setenv("SCHEDULE_DAYS_BEFORE", "-3")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()

	if cfg.PollInterval != time.Minute {
		t.Fatalf("expected default poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Schedule.DaysBefore != 2 {
		t.Fatalf("expected default days before, got %d", cfg.Schedule.DaysBefore)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected default metrics setting")
	}
}

func TestConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
port: "9000"
poll_interval: 2m
upstream:
  espn_base_url: https://example.com/sports
  timeout: 5s
schedule:
  days_before: 3
proxy:
  port: "3100"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PollInterval != 2*time.Minute {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.Upstream.ESPNBaseURL != "https://example.com/sports" {
		t.Fatalf("unexpected espn base url %q", cfg.Upstream.ESPNBaseURL)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Upstream.Timeout)
	}
	if cfg.Schedule.DaysBefore != 3 {
		t.Fatalf("unexpected days before %d", cfg.Schedule.DaysBefore)
	}
	if cfg.Schedule.DaysAfter != 5 {
		t.Fatalf("file must not clear unset fields, got days after %d", cfg.Schedule.DaysAfter)
	}
	if cfg.Proxy.Port != "3100" {
		t.Fatalf("unexpected proxy port %q", cfg.Proxy.Port)
	}
}

func TestConfigFileEnvStillWinsWhenFileSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`port: "9000"`), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PROVIDER", "fixture")

	cfg := Load()
	if cfg.Provider != "fixture" {
		t.Fatalf("expected env provider kept, got %q", cfg.Provider)
	}
}

func TestBrokenConfigFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [not: valid"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8080")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected env values kept for broken file, got %q", cfg.Port)
	}
}

func TestMissingConfigFileIgnored(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("expected defaults for missing file, got %q", cfg.Port)
	}
}
