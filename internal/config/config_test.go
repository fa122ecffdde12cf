package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Season != defaultSeason {
		t.Fatalf("expected default season %d, got %d", defaultSeason, cfg.Season)
	}
	if cfg.ESPN.SiteBaseURL != "" || cfg.ESPN.CoreBaseURL != "" {
		t.Fatalf("expected empty base url overrides by default, got %+v", cfg.ESPN)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "espn")
	t.Setenv(envSeason, "2024")
	t.Setenv(envEspnSiteBaseURL, "http://site.example.com")
	t.Setenv(envEspnCoreBaseURL, "http://core.example.com")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "espn" {
		t.Fatalf("expected provider espn, got %s", cfg.Provider)
	}
	if cfg.Season != 2024 {
		t.Fatalf("expected season 2024, got %d", cfg.Season)
	}
	if cfg.ESPN.SiteBaseURL != "http://site.example.com" {
		t.Fatalf("expected site base url override, got %s", cfg.ESPN.SiteBaseURL)
	}
	if cfg.ESPN.CoreBaseURL != "http://core.example.com" {
		t.Fatalf("expected core base url override, got %s", cfg.ESPN.CoreBaseURL)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}

func TestLoadInvalidSeasonFallsBack(t *testing.T) {
	t.Setenv(envSeason, "not-a-year")

	cfg := Load()

	if cfg.Season != defaultSeason {
		t.Fatalf("expected default season on invalid value, got %d", cfg.Season)
	}
}
