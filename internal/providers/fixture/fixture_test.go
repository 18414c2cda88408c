package fixture

import (
	"context"
	"errors"
	"testing"

	"garu-data-service/internal/providers"
)

func TestFetchLeagueStatsReturnsCopy(t *testing.T) {
	p := New()

	rows, err := p.FetchLeagueStats(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != len(sampleRows) {
		t.Fatalf("expected %d rows, got %d", len(sampleRows), len(rows))
	}
	rows[0].PlayerName = "changed"
	if sampleRows[0].PlayerName == "changed" {
		t.Fatal("expected caller mutation not to leak into fixture data")
	}
}

func TestFetchPlayerPositionsLeavesSomePlayersUnmapped(t *testing.T) {
	positions, err := New().FetchPlayerPositions(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if positions[203999] != "C" {
		t.Fatalf("expected Jokic listed as C, got %q", positions[203999])
	}
	if _, ok := positions[1630596]; ok {
		t.Fatal("expected an unmapped player to exercise the stats-only ladder")
	}
}

func TestFetchCareerRowsUnknownPlayerIsUnavailable(t *testing.T) {
	p := New()
	rows, err := p.FetchCareerRows(context.Background(), 201142)
	if err != nil || len(rows) == 0 {
		t.Fatalf("expected career rows, got %v (%v)", rows, err)
	}
	if _, err := p.FetchCareerRows(context.Background(), 1); !errors.Is(err, providers.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchLeagueStats(ctx, "2025-26"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestProviderImplementsStatsProvider(t *testing.T) {
	var _ providers.StatsProvider = New()
}
