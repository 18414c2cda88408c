package server

import (
	"log/slog"

	"garu-data-service/internal/config"
	"garu-data-service/internal/metrics"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (breaker, retry, throttle).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build wraps the selected provider as breaker(retry(throttle(client))). The
// in-memory fixture has no quota and skips the throttle.
func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)

	paced := base
	if _, isFixture := base.(*fixture.Provider); !isFixture {
		paced = providers.NewThrottledProvider(base, cfg.NBAStats.RequestDelay, f.logger)
	}
	retrying := providers.NewRetryingProvider(paced, f.logger, f.metrics, name, cfg.NBAStats.MaxAttempts, 0)
	return providers.NewBreakerProvider(retrying, name, providers.BreakerSettings{}, f.logger)
}
