package server

import (
	"log/slog"
	"time"

	"nfl-data-service/internal/config"
	"nfl-data-service/internal/metrics"
	"nfl-data-service/internal/providers"
)

// providerFactory assembles the polling provider with shared wrappers (rate limit + retry).
// Only the scoreboard polling path is wrapped; per-request fetches surface
// upstream failures unretried.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, base providers.GameProvider) providers.GameProvider {
	// Shared rate limiter to respect upstream quota (1/min default if poll interval is shorter).
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}
