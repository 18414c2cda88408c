package store

import (
	"context"
	"sort"
	"sync"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

// MemoryStore is a process-local durable store with the same upsert-by-id semantics
// as the Postgres tables. Useful for local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	players  map[int64]players.Record
	journeys map[int64]journeys.Record
	order    []int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:  make(map[int64]players.Record),
		journeys: make(map[int64]journeys.Record),
	}
}

// UpsertPlayers replaces the active roster. Players missing from it are dropped,
// matching the Postgres deactivation. An empty roster changes nothing.
func (s *MemoryStore) UpsertPlayers(ctx context.Context, roster players.Roster) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(roster) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make(map[int64]players.Record, len(roster))
	for _, r := range roster {
		active[r.ID] = r
	}
	s.players = active
	return nil
}

// ListPlayers returns every stored record ordered by points per game.
func (s *MemoryStore) ListPlayers(ctx context.Context) (players.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(players.Roster, 0, len(s.players))
	for _, r := range s.players {
		result = append(result, r)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Points != result[j].Points {
			return result[i].Points > result[j].Points
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// UpsertJourneys inserts or replaces journey records by id, preserving first-insert order.
func (s *MemoryStore) UpsertJourneys(ctx context.Context, records []journeys.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if _, ok := s.journeys[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		r.Teams = append([]string(nil), r.Teams...)
		s.journeys[r.ID] = r
	}
	return nil
}

// ListJourneys returns every stored journey record.
func (s *MemoryStore) ListJourneys(ctx context.Context) ([]journeys.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]journeys.Record, 0, len(s.order))
	for _, id := range s.order {
		r := s.journeys[id]
		r.Teams = append([]string(nil), r.Teams...)
		result = append(result, r)
	}
	return result, nil
}
