package store

import (
	"context"
	"testing"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

func TestMemoryStoreUpsertAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	roster := players.Roster{
		{ID: 1, Name: "Low", StatLine: players.StatLine{Points: 8}},
		{ID: 2, Name: "High", StatLine: players.StatLine{Points: 30}},
	}
	if err := s.UpsertPlayers(ctx, roster); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.UpsertPlayers(ctx, players.Roster{
		{ID: 1, Name: "Low", StatLine: players.StatLine{Points: 12}},
		{ID: 2, Name: "High", StatLine: players.StatLine{Points: 30}},
	}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	got, err := s.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected upsert by id to keep 2 players, got %d", len(got))
	}
	if got[0].Name != "High" || got[1].Points != 12 {
		t.Fatalf("expected points-descending order with updated record, got %+v", got)
	}
}

func TestMemoryStoreDropsPlayersMissingFromUpsert(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.UpsertPlayers(ctx, players.Roster{{ID: 1, Name: "Retired"}, {ID: 2, Name: "Active"}})
	if err := s.UpsertPlayers(ctx, players.Roster{{ID: 2, Name: "Active"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.UpsertPlayers(ctx, nil); err != nil {
		t.Fatalf("empty upsert: %v", err)
	}

	got, _ := s.ListPlayers(ctx)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only the latest roster, got %+v", got)
	}
}

func TestMemoryStoreJourneysKeepInsertOrderAndCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	teams := []string{"BOS", "LAL"}
	if err := s.UpsertJourneys(ctx, []journeys.Record{{ID: 5, Teams: teams}, {ID: 3, Teams: []string{"MIA", "CHI"}}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	teams[0] = "XXX"
	if err := s.UpsertJourneys(ctx, []journeys.Record{{ID: 5, Teams: []string{"BOS", "LAL", "GSW"}}}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	got, err := s.ListJourneys(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 3 {
		t.Fatalf("expected first-insert order, got %+v", got)
	}
	if len(got[0].Teams) != 3 || got[0].Teams[0] != "BOS" {
		t.Fatalf("expected replaced record with independent slice, got %+v", got[0])
	}
}

func TestMemoryStoreHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	if err := s.UpsertPlayers(ctx, players.Roster{{ID: 1}}); err == nil {
		t.Fatal("expected canceled context error")
	}
	if _, err := s.ListJourneys(ctx); err == nil {
		t.Fatal("expected canceled context error")
	}
}

func TestMemoryStoreImplementsDurable(t *testing.T) {
	var _ Durable = NewMemoryStore()
}
