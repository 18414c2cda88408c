package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"garu-data-service/internal/logging"
)

// MinRequestInterval is the smallest gap allowed between two calls of the same kind.
// stats.nba.com answers bursts with errors or truncated payloads.
const MinRequestInterval = 600 * time.Millisecond

// throttledProvider keeps one limiter per logical call so every request waits
// at least the configured interval after the previous request of that kind.
type throttledProvider struct {
	next     StatsProvider
	interval time.Duration
	limiters map[string]*rate.Limiter
	logger   *slog.Logger
}

// NewThrottledProvider wraps next so every upstream call waits for its turn.
// Intervals below MinRequestInterval are raised to it.
func NewThrottledProvider(next StatsProvider, interval time.Duration, logger *slog.Logger) StatsProvider {
	if interval < MinRequestInterval {
		interval = MinRequestInterval
	}
	return newThrottledProvider(next, interval, logger)
}

func newThrottledProvider(next StatsProvider, interval time.Duration, logger *slog.Logger) *throttledProvider {
	return &throttledProvider{
		next:     next,
		interval: interval,
		limiters: map[string]*rate.Limiter{
			CallLeagueStats:     NewPacer(interval),
			CallPlayerPositions: NewPacer(interval),
			CallCareerRows:      NewPacer(interval),
		},
		logger: logger,
	}
}

// NewPacer returns a limiter that admits one event per interval, including the first:
// the initial token is spent at construction.
func NewPacer(interval time.Duration) *rate.Limiter {
	l := rate.NewLimiter(rate.Every(interval), 1)
	l.Allow()
	return l
}

func (p *throttledProvider) FetchLeagueStats(ctx context.Context, season string) ([]RawStatRow, error) {
	if err := p.wait(ctx, CallLeagueStats); err != nil {
		return nil, err
	}
	return p.next.FetchLeagueStats(ctx, season)
}

func (p *throttledProvider) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	if err := p.wait(ctx, CallPlayerPositions); err != nil {
		return nil, err
	}
	return p.next.FetchPlayerPositions(ctx, season)
}

func (p *throttledProvider) FetchCareerRows(ctx context.Context, playerID int64) ([]CareerRow, error) {
	if err := p.wait(ctx, CallCareerRows); err != nil {
		return nil, err
	}
	return p.next.FetchCareerRows(ctx, playerID)
}

func (p *throttledProvider) wait(ctx context.Context, call string) error {
	if p == nil || p.next == nil {
		return ErrUpstreamUnavailable
	}
	if err := p.limiters[call].Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "throttled", "throttled fetch canceled", slog.String(logging.FieldCall, call))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
