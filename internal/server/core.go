package server

import (
	"context"
	"log/slog"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/config"
	"garu-data-service/internal/journey"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/metrics"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/roster"
	"garu-data-service/internal/snapshots"
	"garu-data-service/internal/store"
)

var openStore = openPostgres

// Core holds the provider, cache tiers and resolvers shared by the HTTP server
// and the sync command.
type Core struct {
	Provider  providers.StatsProvider
	Durable   store.Durable
	Snapshots *snapshots.Local
	Roster    *cache.Manager
	Journeys  *journey.Service

	closeStore func()
}

// NewCore wires the tiers from cfg. The durable tier is optional: a missing DSN
// or an unreachable database leaves it disabled and the rest keeps working.
func NewCore(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Core {
	provider := newProviderFactory(logger, recorder).build(cfg)
	local := snapshots.NewLocal(cfg.Cache.SnapshotDir, nil)

	core := &Core{Provider: provider, Snapshots: local}
	if durable, closeFn := openStore(ctx, cfg.Database, logger); durable != nil {
		core.Durable = durable
		core.closeStore = closeFn
	}

	core.Roster = cache.NewManager(cache.Options{
		Store:     core.Durable,
		Snapshots: local,
		Fetcher:   roster.NewFetcher(provider, cfg.Season, logger),
		Season:    cfg.Season,
		TTL:       cfg.Cache.RosterTTL,
		Logger:    logger,
		Metrics:   recorder,
	})
	core.Journeys = journey.NewService(journey.Options{
		Store:         core.Durable,
		Snapshots:     local,
		Provider:      provider,
		Roster:        core.Roster,
		TTL:           cfg.Cache.JourneyTTL,
		ProbeDelay:    cfg.Journey.ProbeDelay,
		MaxCandidates: cfg.Journey.MaxCandidates,
		Logger:        logger,
		Metrics:       recorder,
	})
	return core
}

// Close releases the durable store connection pool, if any.
func (c *Core) Close() {
	if c != nil && c.closeStore != nil {
		c.closeStore()
	}
}

// openPostgres connects and applies the schema. It returns a nil store when no database
// is configured or it cannot be reached.
func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Durable, func()) {
	if !cfg.Configured() {
		logging.Info(logger, "durable store disabled, no database configured")
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, storeOpenTimeout)
	defer cancel()

	pg, err := store.Open(ctx, cfg.DSN())
	if err != nil {
		logging.Warn(logger, "durable store unavailable, continuing without it", "db", cfg.String(), "err", err)
		return nil, nil
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		logging.Warn(logger, "durable store schema failed, continuing without it", "db", cfg.String(), "err", err)
		pg.Close()
		return nil, nil
	}
	logging.Info(logger, "durable store connected", "db", cfg.String())
	return pg, pg.Close
}
