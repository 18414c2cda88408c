package snapshots

import (
	"testing"

	"github.com/jonboulle/clockwork"
)

func TestLocalReadsWhatItWrites(t *testing.T) {
	l := NewLocal(t.TempDir(), clockwork.NewFakeClockAt(capturedAt))

	if err := l.WriteRoster(NewRosterDocument("2025-26", sampleRoster(), capturedAt)); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if err := l.WriteJourneys(NewJourneyDocument(sampleJourneys(), capturedAt)); err != nil {
		t.Fatalf("write journeys: %v", err)
	}

	doc, err := l.LoadRoster("2025-26")
	if err != nil || doc.Count != 2 {
		t.Fatalf("expected roster back, got %+v err %v", doc, err)
	}
	js, err := l.LoadJourneys()
	if err != nil || len(js.Players) != 1 {
		t.Fatalf("expected journeys back, got %+v err %v", js, err)
	}
	m, err := l.LoadManifest()
	if err != nil || m.Roster.Count != 2 || m.Journeys.Count != 1 {
		t.Fatalf("expected manifest with both entries, got %+v err %v", m, err)
	}
}
