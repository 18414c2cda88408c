package players

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/roster"
)

// MaxListLimit caps List results.
const MaxListLimit = 500

// RosterSource resolves the current roster.
type RosterSource interface {
	GetRoster(ctx context.Context, forceRefresh bool) cache.Resolution
	Season() string
}

// Filter narrows List results. Zero values disable a filter.
type Filter struct {
	Team      string
	Position  string
	MinPoints float64
	Limit     int
	Refresh   bool
}

// Page is a roster slice plus where it came from.
type Page struct {
	Players players.Roster
	Season  string
	Source  cache.Tier
}

// Service answers roster queries over the tiered cache.
type Service struct {
	source RosterSource
	clock  clockwork.Clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService constructs a Service. A nil rng is seeded from the clock.
func NewService(source RosterSource, clock clockwork.Clock, rng *rand.Rand) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &Service{source: source, clock: clock, rng: rng}
}

// Season returns the season label served.
func (s *Service) Season() string {
	return s.source.Season()
}

// Roster returns the full resolved roster.
func (s *Service) Roster(ctx context.Context) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, res.Players)
}

// List applies the team, position and scoring filters, then the limit.
func (s *Service) List(ctx context.Context, f Filter) Page {
	res := s.source.GetRoster(ctx, f.Refresh)
	out := res.Players
	if f.Team != "" {
		out = roster.ByTeam(out, f.Team)
	}
	if f.Position != "" {
		out = roster.ByPosition(out, f.Position)
	}
	if f.MinPoints > 0 {
		out = roster.MinPoints(out, f.MinPoints)
	}
	limit := f.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.page(res, truncate(out, limit))
}

// Refresh forces a live fetch through the cache.
func (s *Service) Refresh(ctx context.Context) cache.Resolution {
	return s.source.GetRoster(ctx, true)
}

// Stars returns players scoring at least minPts.
func (s *Service) Stars(ctx context.Context, minPts float64) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, roster.Stars(res.Players, minPts))
}

// Top returns the n highest rated players.
func (s *Service) Top(ctx context.Context, n int) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, roster.TopByRating(res.Players, n))
}

// RolePlayers returns n recognizable mid-usage players.
func (s *Service) RolePlayers(ctx context.Context, n int) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, roster.RolePlayers(res.Players, n))
}

// Random samples n players.
func (s *Service) Random(ctx context.Context, n int) Page {
	res := s.source.GetRoster(ctx, false)
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.page(res, roster.Random(res.Players, n, s.rng))
}

// Team returns one team's players.
func (s *Service) Team(ctx context.Context, abbr string) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, roster.ByTeam(res.Players, abbr))
}

// Search matches player names, keeping at most limit results.
func (s *Service) Search(ctx context.Context, q string, limit int) Page {
	res := s.source.GetRoster(ctx, false)
	return s.page(res, truncate(roster.Search(res.Players, q), limit))
}

// ByPosition returns players at pos. forDraft mixes top scorers with the next tier.
func (s *Service) ByPosition(ctx context.Context, pos players.Position, limit int, forDraft bool) Page {
	res := s.source.GetRoster(ctx, false)
	out := roster.ByPosition(res.Players, string(pos))
	if forDraft {
		s.rngMu.Lock()
		defer s.rngMu.Unlock()
		return s.page(res, roster.ForDraft(out, limit, s.rng))
	}
	return s.page(res, truncate(out, limit))
}

// Daily returns today's player and the date it was picked for.
func (s *Service) Daily(ctx context.Context) (players.Record, string, bool) {
	res := s.source.GetRoster(ctx, false)
	today := s.clock.Now().UTC()
	p, ok := roster.Daily(res.Players, today)
	return p, today.Format(time.DateOnly), ok
}

// ByID returns one player.
func (s *Service) ByID(ctx context.Context, id int64) (players.Record, bool) {
	res := s.source.GetRoster(ctx, false)
	return roster.FindByID(res.Players, id)
}

func (s *Service) page(res cache.Resolution, out players.Roster) Page {
	if out == nil {
		out = players.Roster{}
	}
	season := res.Season
	if season == "" {
		season = s.source.Season()
	}
	return Page{Players: out, Season: season, Source: res.Source}
}

func truncate(r players.Roster, n int) players.Roster {
	if n >= 0 && len(r) > n {
		return r[:n]
	}
	return r
}
