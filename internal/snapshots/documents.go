package snapshots

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

var (
	// ErrNotFound means no snapshot has been written yet.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorrupt means the snapshot exists but could not be read or decoded.
	ErrCorrupt = errors.New("snapshot corrupt")
)

// Accepted timestamp layouts, newest format first. Naive timestamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// RosterDocument is the on-disk roster snapshot.
type RosterDocument struct {
	Timestamp string         `json:"timestamp"`
	Season    string         `json:"season"`
	Count     int            `json:"count"`
	Players   players.Roster `json:"players"`
}

// NewRosterDocument stamps a roster with its capture time.
func NewRosterDocument(season string, roster players.Roster, capturedAt time.Time) RosterDocument {
	return RosterDocument{
		Timestamp: FormatTimestamp(capturedAt),
		Season:    season,
		Count:     len(roster),
		Players:   roster,
	}
}

// CapturedAt parses the document timestamp.
func (d RosterDocument) CapturedAt() (time.Time, error) {
	return ParseTimestamp(d.Timestamp)
}

// JourneyDocument is the on-disk journey snapshot.
type JourneyDocument struct {
	Timestamp string            `json:"timestamp"`
	Players   []journeys.Record `json:"players"`
}

// NewJourneyDocument stamps journey records with their capture time.
func NewJourneyDocument(records []journeys.Record, capturedAt time.Time) JourneyDocument {
	return JourneyDocument{
		Timestamp: FormatTimestamp(capturedAt),
		Players:   records,
	}
}

// CapturedAt parses the document timestamp.
func (d JourneyDocument) CapturedAt() (time.Time, error) {
	return ParseTimestamp(d.Timestamp)
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp reads an ISO-8601 timestamp with or without a zone offset.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrCorrupt, raw)
}

// IsFresh reports whether a snapshot captured at capturedAt is younger than ttl.
func IsFresh(capturedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(capturedAt) < ttl
}
