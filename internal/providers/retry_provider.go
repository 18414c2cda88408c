package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"garu-data-service/internal/logging"
	"garu-data-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a StatsProvider with retry/backoff behavior and records
// one provider attempt per upstream call.
type retryingProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/baseDelay are <= 0, defaults are used.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, rec *metrics.Recorder, providerName string, maxAttempts int, baseDelay time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = baseDelay
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchLeagueStats(ctx context.Context, season string) ([]RawStatRow, error) {
	var rows []RawStatRow
	err := r.do(ctx, CallLeagueStats, func(ctx context.Context) error {
		var err error
		rows, err = r.inner.FetchLeagueStats(ctx, season)
		return err
	})
	return rows, err
}

func (r *retryingProvider) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	var positions map[int64]string
	err := r.do(ctx, CallPlayerPositions, func(ctx context.Context) error {
		var err error
		positions, err = r.inner.FetchPlayerPositions(ctx, season)
		return err
	})
	return positions, err
}

func (r *retryingProvider) FetchCareerRows(ctx context.Context, playerID int64) ([]CareerRow, error) {
	var rows []CareerRow
	err := r.do(ctx, CallCareerRows, func(ctx context.Context) error {
		var err error
		rows, err = r.inner.FetchCareerRows(ctx, playerID)
		return err
	})
	return rows, err
}

func (r *retryingProvider) do(ctx context.Context, call string, fn func(context.Context) error) error {
	if r.inner == nil {
		return ErrUpstreamUnavailable
	}

	var retryAfter time.Duration
	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			retryAfter = rlErr.RetryAfter
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&retryAfterBackOff{BackOff: r.newBackOff(), hint: &retryAfter}, uint64(r.maxAttempts-1)),
		ctx,
	)
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			slog.String(logging.FieldCall, call),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
	}

	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			slog.String(logging.FieldCall, call),
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)
	}
	return err
}

// retryAfterBackOff stretches the next delay to honor an upstream Retry-After hint.
type retryAfterBackOff struct {
	backoff.BackOff
	hint *time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if *b.hint > next {
		next = *b.hint
	}
	*b.hint = 0
	return next
}
