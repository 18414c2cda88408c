package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/providers"
	"garu-data-service/internal/snapshots"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{
		Rows:       []providers.RawStatRow{{PlayerID: 1}},
		CareerErrs: map[int64]error{7: err},
		Careers:    map[int64][]providers.CareerRow{1: {{Season: "2020-21", TeamAbbreviation: "BOS"}}},
	}
	ctx := context.Background()
	if rows, got := p.FetchLeagueStats(ctx, "2025-26"); got != nil || len(rows) != 1 {
		t.Fatalf("expected rows, got %v err %v", rows, got)
	}
	if _, got := p.FetchCareerRows(ctx, 7); !errors.Is(got, err) {
		t.Fatalf("expected per-player error passthrough, got %v", got)
	}
	if rows, _ := p.FetchCareerRows(ctx, 1); len(rows) != 1 {
		t.Fatalf("expected career rows, got %v", rows)
	}
	if p.LeagueCalls.Load() != 1 || p.CareerCalls.Load() != 2 || p.PositionCalls.Load() != 0 {
		t.Fatalf("unexpected call counts")
	}
}

func TestStubStoreErrorsAndCopies(t *testing.T) {
	s := &StubStore{}
	ctx := context.Background()
	roster := players.Roster{{ID: 1}}
	if err := s.UpsertPlayers(ctx, roster); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	roster[0].ID = 99
	got, _ := s.ListPlayers(ctx)
	if got[0].ID != 1 {
		t.Fatalf("expected stored copy, got %+v", got)
	}

	s.UpsertErr = errors.New("down")
	if err := s.UpsertJourneys(ctx, []journeys.Record{{ID: 1}}); err == nil {
		t.Fatal("expected upsert error")
	}
	s.ListErr = errors.New("down")
	if _, err := s.ListJourneys(ctx); err == nil {
		t.Fatal("expected list error")
	}
	if s.PlayerUpserts != 1 || s.JourneyUpserts != 1 || s.Lists != 2 {
		t.Fatalf("unexpected counters %d %d %d", s.PlayerUpserts, s.JourneyUpserts, s.Lists)
	}
}

func TestStubSnapshots(t *testing.T) {
	s := &StubSnapshots{}
	if _, err := s.LoadRoster("2025-26"); !errors.Is(err, snapshots.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.LoadJourneys(); !errors.Is(err, snapshots.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	now := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	if err := s.WriteRoster(snapshots.NewRosterDocument("2025-26", players.Roster{{ID: 1}}, now)); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := s.LoadRoster("2025-26")
	if err != nil || doc.Count != 1 {
		t.Fatalf("expected stored roster, got %+v err %v", doc, err)
	}

	s.WriteErr = errors.New("disk full")
	if err := s.WriteJourneys(snapshots.NewJourneyDocument(nil, now)); err == nil {
		t.Fatal("expected write error")
	}
	if s.RosterWrites != 1 || s.JourneyWrites != 1 {
		t.Fatalf("unexpected write counts")
	}
}
