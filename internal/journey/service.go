package journey

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/metrics"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/snapshots"
	"garu-data-service/internal/store"
)

// Defaults for reconstruction batches.
const (
	DefaultTTL           = 7 * 24 * time.Hour
	DefaultProbeDelay    = 300 * time.Millisecond
	DefaultMaxCandidates = 100
)

const kindJourney = "journey"

// RosterSource resolves the cached roster used to pick probe candidates.
type RosterSource interface {
	GetRoster(ctx context.Context, forceRefresh bool) cache.Resolution
}

// JourneySnapshots reads and writes the local journey snapshot.
type JourneySnapshots interface {
	LoadJourneys() (snapshots.JourneyDocument, error)
	WriteJourneys(doc snapshots.JourneyDocument) error
}

// Options wires a Service. A nil Store disables the durable tier.
type Options struct {
	Store         store.JourneyStore
	Snapshots     JourneySnapshots
	Provider      providers.StatsProvider
	Roster        RosterSource
	Clock         clockwork.Clock
	TTL           time.Duration
	ProbeDelay    time.Duration
	MaxCandidates int
	Rand          *rand.Rand
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Result is the outcome of Players.
type Result struct {
	Players  []journeys.Record
	Source   cache.Tier
	Degraded bool
}

// Service serves journey players from the durable store, the journey snapshot or
// a fresh reconstruction batch.
type Service struct {
	store         store.JourneyStore
	snaps         JourneySnapshots
	provider      providers.StatsProvider
	roster        RosterSource
	clock         clockwork.Clock
	ttl           time.Duration
	probeDelay    time.Duration
	maxCandidates int
	logger        *slog.Logger
	metrics       *metrics.Recorder

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService constructs a Service.
func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.ProbeDelay <= 0 {
		opts.ProbeDelay = DefaultProbeDelay
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultMaxCandidates
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock.Now().UnixNano()))
	}
	return &Service{
		store:         opts.Store,
		snaps:         opts.Snapshots,
		provider:      opts.Provider,
		roster:        opts.Roster,
		clock:         opts.Clock,
		ttl:           opts.TTL,
		probeDelay:    opts.ProbeDelay,
		maxCandidates: opts.MaxCandidates,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		rng:           opts.Rand,
	}
}

// Players returns up to count shuffled journeys with at least minTeams stints. It never fails.
func (s *Service) Players(ctx context.Context, count, minTeams int) Result {
	start := s.clock.Now()
	logger := logging.FromContext(ctx, s.logger)

	res := s.resolve(ctx, logger, count, minTeams)
	res.Players = s.shuffle(res.Players, count)

	s.metrics.RecordCacheResolution(kindJourney, string(res.Source), s.clock.Since(start))
	logging.Debug(logger, "journeys resolved",
		logging.FieldTier, string(res.Source),
		logging.FieldCount, len(res.Players),
	)
	return res
}

func (s *Service) resolve(ctx context.Context, logger *slog.Logger, count, minTeams int) Result {
	if count <= 0 {
		return Result{Players: []journeys.Record{}, Source: cache.TierEmpty}
	}

	var best []journeys.Record

	if s.store != nil {
		records, err := s.store.ListJourneys(ctx)
		if err != nil {
			logging.Warn(logger, "durable journey store unavailable", "error", err)
		}
		filtered := journeys.Filter(records, minTeams)
		if len(filtered) >= count {
			return Result{Players: filtered, Source: cache.TierDurable}
		}
		best = filtered
	}

	doc, docErr := s.loadSnapshot()
	if docErr == nil {
		filtered := journeys.Filter(doc.Players, minTeams)
		capturedAt, _ := doc.CapturedAt()
		if len(filtered) >= count && snapshots.IsFresh(capturedAt, s.clock.Now(), s.ttl) {
			return Result{Players: filtered, Source: cache.TierSnapshot}
		}
		if len(filtered) > len(best) {
			best = filtered
		}
	} else if !errors.Is(docErr, snapshots.ErrNotFound) {
		logging.Warn(logger, "journey snapshot unreadable", "error", docErr)
	}

	built := s.ReconstructMany(ctx, 2*count, minTeams)
	if len(built) > 0 {
		s.persist(ctx, logger, built, doc.Players)
	}
	if fresh := journeys.Filter(built, minTeams); len(fresh) > 0 && (len(fresh) >= count || len(fresh) >= len(best)) {
		return Result{Players: fresh, Source: cache.TierLive}
	}

	if len(best) > 0 {
		logging.Warn(logger, "serving partial journey set", logging.FieldCount, len(best))
		return Result{Players: best, Source: cache.TierStale, Degraded: true}
	}

	logging.Warn(logger, "no journey data available")
	return Result{Players: []journeys.Record{}, Source: cache.TierEmpty, Degraded: true}
}

// ReconstructMany probes the careers of the most-played roster players, stopping once
// target records with at least minTeams stints are found. Every record with a usable
// journey is returned. Failed probes are logged and skipped.
func (s *Service) ReconstructMany(ctx context.Context, target, minTeams int) []journeys.Record {
	logger := logging.FromContext(ctx, s.logger)
	if s.provider == nil || s.roster == nil || target <= 0 {
		return nil
	}

	candidates := s.candidates(ctx)
	pacer := providers.NewPacer(s.probeDelay)

	var (
		out       []journeys.Record
		qualified int
	)
	for _, p := range candidates {
		if err := pacer.Wait(ctx); err != nil {
			logging.Warn(logger, "journey reconstruction interrupted", "error", err)
			break
		}
		rows, err := s.provider.FetchCareerRows(ctx, p.ID)
		if err != nil {
			s.metrics.RecordJourneyProbe(false, err)
			logging.Warn(logger, "career lookup failed", logging.FieldPlayerID, p.ID, "error", err)
			continue
		}

		rec := NewRecord(p.ID, p.Name, p.Team, rows)
		ok := rec.Qualifies(minTeams)
		s.metrics.RecordJourneyProbe(ok, nil)
		if rec.Qualifies(journeys.MinUsableTeams) {
			out = append(out, rec)
		}
		if ok {
			qualified++
			if qualified >= target {
				break
			}
		}
	}

	logging.Info(logger, "journeys reconstructed",
		logging.FieldCount, len(out),
		"candidates", len(candidates),
		"qualified", qualified,
	)
	return out
}

// Rebuild reconstructs journeys and persists them to every configured tier,
// merging with the records already in the snapshot.
func (s *Service) Rebuild(ctx context.Context, target, minTeams int) []journeys.Record {
	logger := logging.FromContext(ctx, s.logger)
	built := s.ReconstructMany(ctx, target, minTeams)
	if len(built) == 0 {
		return built
	}
	doc, _ := s.loadSnapshot()
	s.persist(ctx, logger, built, doc.Players)
	return built
}

// candidates orders the roster by games played and keeps the first maxCandidates.
func (s *Service) candidates(ctx context.Context) players.Roster {
	res := s.roster.GetRoster(ctx, false)
	pool := res.Players.Clone()
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].GamesPlayed > pool[j].GamesPlayed
	})
	if len(pool) > s.maxCandidates {
		pool = pool[:s.maxCandidates]
	}
	return pool
}

func (s *Service) persist(ctx context.Context, logger *slog.Logger, built, previous []journeys.Record) {
	if s.store != nil {
		if err := s.store.UpsertJourneys(ctx, built); err != nil {
			logging.Warn(logger, "persist journeys to durable store failed", "error", err)
		}
	}
	if s.snaps != nil {
		doc := snapshots.NewJourneyDocument(merge(previous, built), s.clock.Now())
		if err := s.snaps.WriteJourneys(doc); err != nil {
			logging.Warn(logger, "write journey snapshot failed", "error", err)
		}
	}
}

func (s *Service) loadSnapshot() (snapshots.JourneyDocument, error) {
	if s.snaps == nil {
		return snapshots.JourneyDocument{}, snapshots.ErrNotFound
	}
	return s.snaps.LoadJourneys()
}

func (s *Service) shuffle(records []journeys.Record, count int) []journeys.Record {
	out := append([]journeys.Record{}, records...)
	s.rngMu.Lock()
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	s.rngMu.Unlock()
	if count >= 0 && len(out) > count {
		out = out[:count]
	}
	return out
}

// merge keeps previous records that were not rebuilt, followed by the rebuilt ones.
func merge(previous, built []journeys.Record) []journeys.Record {
	rebuilt := make(map[int64]struct{}, len(built))
	for _, r := range built {
		rebuilt[r.ID] = struct{}{}
	}
	out := make([]journeys.Record, 0, len(previous)+len(built))
	for _, r := range previous {
		if _, ok := rebuilt[r.ID]; !ok {
			out = append(out, r)
		}
	}
	return append(out, built...)
}
