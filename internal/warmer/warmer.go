package warmer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/logging"
)

const defaultRetryInterval = 30 * time.Second

// RosterSource resolves the roster through the tiered cache.
type RosterSource interface {
	GetRoster(ctx context.Context, forceRefresh bool) cache.Resolution
}

// Status describes the outcome of the boot-time roster resolution.
type Status struct {
	Attempts    int
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   string
	Source      cache.Tier
	Count       int
}

// IsReady reports whether some tier has answered with players.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// Warmer resolves the roster once at boot so the first request finds a populated
// tier. An empty resolution is retried every interval until one succeeds.
type Warmer struct {
	source   RosterSource
	logger   *slog.Logger
	clock    clockwork.Clock
	interval time.Duration

	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Warmer. A non-positive interval uses the default.
func New(source RosterSource, logger *slog.Logger, clock clockwork.Clock, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Warmer{
		source:   source,
		logger:   logger,
		clock:    clock,
		interval: interval,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start launches the warm-up loop. Calling it again is a no-op.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	go func() {
		defer close(w.finished)
		for {
			if w.warmOnce(ctx) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-w.done:
				return
			case <-w.clock.After(w.interval):
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight attempt until ctx expires.
func (w *Warmer) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.done) })

	w.startMu.Lock()
	started := w.started
	w.startMu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-w.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Warmer) warmOnce(ctx context.Context) bool {
	start := w.clock.Now()
	res := w.source.GetRoster(ctx, false)

	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.Attempts++
	w.status.LastAttempt = start
	w.status.Source = res.Source
	w.status.Count = len(res.Players)
	if res.Err != nil {
		w.status.LastError = res.Err.Error()
		logging.Warn(w.logger, "roster warm-up found no data",
			logging.FieldTier, string(res.Source),
			"err", res.Err,
		)
		return false
	}
	w.status.LastError = ""
	w.status.LastSuccess = start
	logging.Info(w.logger, "roster warmed",
		logging.FieldTier, string(res.Source),
		logging.FieldCount, len(res.Players),
		logging.FieldDurationMS, w.clock.Since(start).Milliseconds(),
	)
	return true
}

// Status returns a snapshot of the warm-up state.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
