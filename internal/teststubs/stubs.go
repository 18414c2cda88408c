package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/snapshots"
)

// StubProvider is a test double for providers.StatsProvider.
type StubProvider struct {
	Rows      []providers.RawStatRow
	Positions map[int64]string
	Careers   map[int64][]providers.CareerRow

	LeagueErr   error
	PositionErr error
	// CareerErr applies to every career call; CareerErrs to specific players.
	CareerErr  error
	CareerErrs map[int64]error

	LeagueCalls   atomic.Int32
	PositionCalls atomic.Int32
	CareerCalls   atomic.Int32
}

// FetchLeagueStats returns configured rows and error while tracking calls.
func (s *StubProvider) FetchLeagueStats(ctx context.Context, season string) ([]providers.RawStatRow, error) {
	_ = ctx
	_ = season
	s.LeagueCalls.Add(1)
	if s.LeagueErr != nil {
		return nil, s.LeagueErr
	}
	return s.Rows, nil
}

// FetchPlayerPositions returns configured positions and error while tracking calls.
func (s *StubProvider) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	_ = ctx
	_ = season
	s.PositionCalls.Add(1)
	if s.PositionErr != nil {
		return nil, s.PositionErr
	}
	return s.Positions, nil
}

// FetchCareerRows returns the configured career for the player while tracking calls.
func (s *StubProvider) FetchCareerRows(ctx context.Context, playerID int64) ([]providers.CareerRow, error) {
	_ = ctx
	s.CareerCalls.Add(1)
	if s.CareerErr != nil {
		return nil, s.CareerErr
	}
	if err, ok := s.CareerErrs[playerID]; ok {
		return nil, err
	}
	return s.Careers[playerID], nil
}

// StubStore is a test double for store.Durable.
type StubStore struct {
	mu       sync.Mutex
	Players  players.Roster
	Journeys []journeys.Record

	ListErr   error
	UpsertErr error

	PlayerUpserts  int
	JourneyUpserts int
	Lists          int
}

// UpsertPlayers replaces the stored roster unless UpsertErr is set.
func (s *StubStore) UpsertPlayers(ctx context.Context, roster players.Roster) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PlayerUpserts++
	if s.UpsertErr != nil {
		return s.UpsertErr
	}
	s.Players = roster.Clone()
	return nil
}

// ListPlayers returns the stored roster unless ListErr is set.
func (s *StubStore) ListPlayers(ctx context.Context) (players.Roster, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lists++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Players.Clone(), nil
}

// UpsertJourneys replaces the stored journeys unless UpsertErr is set.
func (s *StubStore) UpsertJourneys(ctx context.Context, records []journeys.Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.JourneyUpserts++
	if s.UpsertErr != nil {
		return s.UpsertErr
	}
	s.Journeys = append([]journeys.Record(nil), records...)
	return nil
}

// ListJourneys returns the stored journeys unless ListErr is set.
func (s *StubStore) ListJourneys(ctx context.Context) ([]journeys.Record, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lists++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]journeys.Record(nil), s.Journeys...), nil
}

// StubSnapshots is a test double for the snapshot reader and writer.
type StubSnapshots struct {
	mu      sync.Mutex
	Rosters map[string]snapshots.RosterDocument // keyed by season
	Journey *snapshots.JourneyDocument

	LoadErr  error
	WriteErr error

	RosterWrites  int
	JourneyWrites int
}

// LoadRoster returns the roster document for the season, or snapshots.ErrNotFound.
func (s *StubSnapshots) LoadRoster(season string) (snapshots.RosterDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return snapshots.RosterDocument{}, s.LoadErr
	}
	doc, ok := s.Rosters[season]
	if !ok {
		return snapshots.RosterDocument{}, snapshots.ErrNotFound
	}
	return doc, nil
}

// WriteRoster records the document unless WriteErr is set.
func (s *StubSnapshots) WriteRoster(doc snapshots.RosterDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RosterWrites++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.Rosters == nil {
		s.Rosters = make(map[string]snapshots.RosterDocument)
	}
	s.Rosters[doc.Season] = doc
	return nil
}

// LoadJourneys returns the journey document, or snapshots.ErrNotFound.
func (s *StubSnapshots) LoadJourneys() (snapshots.JourneyDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return snapshots.JourneyDocument{}, s.LoadErr
	}
	if s.Journey == nil {
		return snapshots.JourneyDocument{}, snapshots.ErrNotFound
	}
	return *s.Journey, nil
}

// WriteJourneys records the document unless WriteErr is set.
func (s *StubSnapshots) WriteJourneys(doc snapshots.JourneyDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.JourneyWrites++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Journey = &doc
	return nil
}
