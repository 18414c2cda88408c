package roster

import (
	"context"
	"fmt"
	"log/slog"

	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/providers"
)

// Fetcher runs the live pipeline: league stats, position index, then BuildRoster.
type Fetcher struct {
	provider providers.StatsProvider
	season   string
	logger   *slog.Logger
}

// NewFetcher constructs a Fetcher for one season.
func NewFetcher(provider providers.StatsProvider, season string, logger *slog.Logger) *Fetcher {
	return &Fetcher{provider: provider, season: season, logger: logger}
}

// Season returns the season label the fetcher builds.
func (f *Fetcher) Season() string {
	return f.season
}

// FetchRoster pulls the season from upstream. A failed position lookup is tolerated
// and the stats-only position ladder is used instead.
func (f *Fetcher) FetchRoster(ctx context.Context) (players.Roster, error) {
	if f == nil || f.provider == nil {
		return nil, fmt.Errorf("fetch roster: %w", providers.ErrUpstreamUnavailable)
	}
	rows, err := f.provider.FetchLeagueStats(ctx, f.season)
	if err != nil {
		return nil, fmt.Errorf("fetch league stats %s: %w", f.season, err)
	}

	positions, err := f.provider.FetchPlayerPositions(ctx, f.season)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, f.logger), "position index unavailable, inferring from stats",
			logging.FieldSeason, f.season,
			"error", err,
		)
		positions = nil
	}

	roster := BuildRoster(rows, positions, f.season)
	logging.Info(logging.FromContext(ctx, f.logger), "roster fetched",
		logging.FieldSeason, f.season,
		logging.FieldCount, len(roster),
	)
	return roster, nil
}
