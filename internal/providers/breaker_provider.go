package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings tunes the circuit breaker placed in front of the upstream.
type BreakerSettings struct {
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// Interval clears closed-state counts periodically; zero keeps them until a state change.
	Interval time.Duration
}

// breakerProvider short-circuits upstream calls while the provider keeps failing,
// so a dead upstream costs one fast error instead of a full retry cycle per request.
type breakerProvider struct {
	next   StatsProvider
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewBreakerProvider wraps next with a circuit breaker that opens once at least
// 60% of three or more calls have failed.
func NewBreakerProvider(next StatsProvider, name string, settings BreakerSettings, logger *slog.Logger) StatsProvider {
	if settings.Timeout <= 0 {
		settings.Timeout = 30 * time.Second
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "provider circuit breaker state changed",
				slog.String("from_state", from.String()),
				slog.String("to_state", to.String()),
			)
		},
	})
	return &breakerProvider{next: next, cb: cb, logger: logger}
}

func (p *breakerProvider) FetchLeagueStats(ctx context.Context, season string) ([]RawStatRow, error) {
	return execute(p, func() ([]RawStatRow, error) {
		return p.next.FetchLeagueStats(ctx, season)
	})
}

func (p *breakerProvider) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	return execute(p, func() (map[int64]string, error) {
		return p.next.FetchPlayerPositions(ctx, season)
	})
}

func (p *breakerProvider) FetchCareerRows(ctx context.Context, playerID int64) ([]CareerRow, error) {
	return execute(p, func() ([]CareerRow, error) {
		return p.next.FetchCareerRows(ctx, playerID)
	})
}

// State exposes the breaker state for readiness reporting.
func (p *breakerProvider) State() gobreaker.State {
	return p.cb.State()
}

func execute[T any](p *breakerProvider, fn func() (T, error)) (T, error) {
	var zero T
	if p.next == nil {
		return zero, ErrUpstreamUnavailable
	}
	out, err := p.cb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}
