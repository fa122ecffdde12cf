package server

import (
	"log/slog"

	"nfl-data-service/internal/config"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/providers/espn"
	"nfl-data-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "espn":
		return espn.NewClient(espn.Config{
			SiteBaseURL: cfg.ESPN.SiteBaseURL,
			CoreBaseURL: cfg.ESPN.CoreBaseURL,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
