package snapshots

import (
	"testing"
	"time"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

var capturedAt = time.Date(2025, 11, 3, 18, 30, 0, 0, time.UTC)

func sampleRoster() players.Roster {
	return players.Roster{
		{ID: 1, Name: "Alpha", Team: "BOS", Position: players.PointGuard, StatLine: players.StatLine{Points: 25}, Rating: 90, Season: "2025-26"},
		{ID: 2, Name: "Beta", Team: "LAL", Position: players.Center, StatLine: players.StatLine{Points: 12}, Rating: 75, Season: "2025-26"},
	}
}

func sampleJourneys() []journeys.Record {
	return []journeys.Record{
		{ID: 9, Name: "Gamma", Teams: []string{"SEA", "OKC"}, CurrentTeam: "HOU"},
	}
}

func writeRoster(t *testing.T, w *Writer, roster players.Roster) {
	t.Helper()
	if err := w.WriteRoster(NewRosterDocument("2025-26", roster, capturedAt)); err != nil {
		t.Fatalf("failed to write roster snapshot: %v", err)
	}
}
