package server

import (
	"log/slog"

	"garu-data-service/internal/config"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/providers/fixture"
	"garu-data-service/internal/providers/nbastats"
)

const (
	providerFixture  = "fixture"
	providerNBAStats = "nbastats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch cfg.Provider {
	case providerFixture, "":
		return fixture.New()
	case providerNBAStats:
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.NBAStats.BaseURL,
			Timeout: cfg.NBAStats.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
