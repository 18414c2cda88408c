package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/metrics"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/snapshots"
	"garu-data-service/internal/store"
)

// Tier names the source that answered a roster lookup.
type Tier string

const (
	TierDurable  Tier = "durable"
	TierSnapshot Tier = "snapshot"
	TierLive     Tier = "live"
	TierStale    Tier = "stale"
	TierEmpty    Tier = "empty"
)

// DefaultTTL is how long a roster snapshot is preferred over a live fetch.
const DefaultTTL = 24 * time.Hour

const kindRoster = "roster"

// ErrNoDataAvailable means every tier failed and the roster is empty.
var ErrNoDataAvailable = errors.New("no roster data available")

// RosterFetcher runs the live upstream pipeline.
type RosterFetcher interface {
	FetchRoster(ctx context.Context) (players.Roster, error)
}

// RosterSnapshots reads and writes the local roster snapshot.
type RosterSnapshots interface {
	LoadRoster(season string) (snapshots.RosterDocument, error)
	WriteRoster(doc snapshots.RosterDocument) error
}

// Options wires a Manager. A nil Store disables the durable tier.
type Options struct {
	Store     store.PlayerStore
	Snapshots RosterSnapshots
	Fetcher   RosterFetcher
	Clock     clockwork.Clock
	Season    string
	TTL       time.Duration
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Resolution is the outcome of GetRoster. Err is set only when Source is TierEmpty.
type Resolution struct {
	Players    players.Roster
	Season     string
	Source     Tier
	CapturedAt time.Time
	Degraded   bool
	Err        error
}

// Manager resolves the roster through durable store, fresh snapshot, live fetch
// and stale snapshot, in that order.
type Manager struct {
	store   store.PlayerStore
	snaps   RosterSnapshots
	live    RosterFetcher
	clock   clockwork.Clock
	season  string
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewManager constructs a Manager.
func NewManager(opts Options) *Manager {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &Manager{
		store:   opts.Store,
		snaps:   opts.Snapshots,
		live:    opts.Fetcher,
		clock:   opts.Clock,
		season:  opts.Season,
		ttl:     opts.TTL,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Season returns the season label the manager serves.
func (m *Manager) Season() string {
	return m.season
}

// GetRoster resolves the roster. It never fails; when every tier is exhausted the
// result is empty with Err set to ErrNoDataAvailable. forceRefresh skips straight to
// the live fetch.
func (m *Manager) GetRoster(ctx context.Context, forceRefresh bool) Resolution {
	start := m.clock.Now()
	logger := logging.FromContext(ctx, m.logger)

	res := m.resolve(ctx, logger, forceRefresh)
	res.Season = m.season
	if res.Players == nil {
		res.Players = players.Roster{}
	}

	m.metrics.RecordCacheResolution(kindRoster, string(res.Source), m.clock.Since(start))
	logging.Debug(logger, "roster resolved",
		logging.FieldTier, string(res.Source),
		logging.FieldSeason, m.season,
		logging.FieldCount, len(res.Players),
	)
	return res
}

func (m *Manager) resolve(ctx context.Context, logger *slog.Logger, forceRefresh bool) Resolution {
	var (
		doc    snapshots.RosterDocument
		docErr error
		loaded bool
	)

	if !forceRefresh {
		if m.store != nil {
			stored, err := m.store.ListPlayers(ctx)
			current := m.currentSeason(stored)
			switch {
			case err != nil:
				logging.Warn(logger, "durable store unavailable", "error", err)
			case len(current) > 0:
				return Resolution{Players: current, Source: TierDurable}
			case len(stored) > 0:
				logging.Info(logger, "durable roster is from another season", logging.FieldSeason, m.season, logging.FieldCount, len(stored))
			}
		}

		doc, docErr = m.loadSnapshot()
		loaded = true
		if docErr == nil {
			capturedAt, _ := doc.CapturedAt()
			if len(doc.Players) > 0 && snapshots.IsFresh(capturedAt, m.clock.Now(), m.ttl) {
				return Resolution{Players: doc.Players, Source: TierSnapshot, CapturedAt: capturedAt}
			}
		} else if errors.Is(docErr, snapshots.ErrCorrupt) {
			logging.Warn(logger, "roster snapshot corrupt", "error", docErr)
		}
	}

	roster, err := m.fetchLive(ctx)
	if err == nil {
		now := m.clock.Now()
		m.persist(ctx, logger, roster, now)
		return Resolution{Players: roster, Source: TierLive, CapturedAt: now}
	}
	logging.Warn(logger, "live roster fetch failed", logging.FieldSeason, m.season, "error", err)

	if !loaded {
		doc, docErr = m.loadSnapshot()
	}
	if docErr == nil && len(doc.Players) > 0 {
		capturedAt, _ := doc.CapturedAt()
		logging.Warn(logger, "serving stale roster snapshot",
			logging.FieldSeason, m.season,
			"captured_at", capturedAt,
		)
		return Resolution{Players: doc.Players, Source: TierStale, CapturedAt: capturedAt, Degraded: true}
	}

	logging.Error(logger, "no roster data available from any tier", ErrNoDataAvailable, logging.FieldSeason, m.season)
	return Resolution{Source: TierEmpty, Degraded: true, Err: ErrNoDataAvailable}
}

// currentSeason keeps the stored records for the managed season.
func (m *Manager) currentSeason(stored players.Roster) players.Roster {
	out := make(players.Roster, 0, len(stored))
	for _, r := range stored {
		if r.Season == m.season {
			out = append(out, r)
		}
	}
	return out
}

func (m *Manager) loadSnapshot() (snapshots.RosterDocument, error) {
	if m.snaps == nil {
		return snapshots.RosterDocument{}, snapshots.ErrNotFound
	}
	return m.snaps.LoadRoster(m.season)
}

func (m *Manager) fetchLive(ctx context.Context) (players.Roster, error) {
	if m.live == nil {
		return nil, fmt.Errorf("no live fetcher: %w", providers.ErrUpstreamUnavailable)
	}
	roster, err := m.live.FetchRoster(ctx)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("empty roster: %w", providers.ErrUpstreamUnavailable)
	}
	return roster, nil
}

// persist writes a fresh roster to every tier it can reach. Failures are logged only.
func (m *Manager) persist(ctx context.Context, logger *slog.Logger, roster players.Roster, now time.Time) {
	if m.store != nil {
		if err := m.store.UpsertPlayers(ctx, roster); err != nil {
			logging.Warn(logger, "persist roster to durable store failed", "error", err)
		}
	}
	if m.snaps != nil {
		if err := m.snaps.WriteRoster(snapshots.NewRosterDocument(m.season, roster, now)); err != nil {
			logging.Warn(logger, "write roster snapshot failed", "error", err)
		}
	}
}
