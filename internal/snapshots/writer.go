package snapshots

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
)

// Writer persists snapshots atomically (temp file + rename) and keeps the manifest current.
// Concurrent writers race; the last rename wins.
type Writer struct {
	basePath string
	clock    clockwork.Clock
	mu       sync.Mutex // guards manifest read-modify-write only
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, clock clockwork.Clock) *Writer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Writer{basePath: basePath, clock: clock}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRoster writes the season's roster snapshot.
func (w *Writer) WriteRoster(doc RosterDocument) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if doc.Season == "" {
		return errors.New("season required")
	}
	doc.Count = len(doc.Players)
	target := RosterSnapshotPath(w.basePath, doc.Season)
	if err := writeJSONAtomic(target, doc); err != nil {
		return err
	}
	capturedAt, _ := doc.CapturedAt()
	return w.updateManifest(func(m *Manifest) {
		m.Roster = RosterMeta{
			File:          filepath.Base(target),
			Season:        doc.Season,
			Count:         doc.Count,
			LastRefreshed: capturedAt,
		}
	})
}

// WriteJourneys writes the journey snapshot.
func (w *Writer) WriteJourneys(doc JourneyDocument) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	target := JourneySnapshotPath(w.basePath)
	if err := writeJSONAtomic(target, doc); err != nil {
		return err
	}
	capturedAt, _ := doc.CapturedAt()
	return w.updateManifest(func(m *Manifest) {
		m.Journeys = JourneyMeta{
			File:          filepath.Base(target),
			Count:         len(doc.Players),
			LastRefreshed: capturedAt,
		}
	})
}

func (w *Writer) updateManifest(apply func(*Manifest)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	m := defaultManifest()
	if err := decodeFile(ManifestPath(w.basePath), &m); err != nil && !errors.Is(err, ErrNotFound) {
		m = defaultManifest()
	}
	apply(&m)
	m.Version = manifestVersion
	m.GeneratedAt = w.clock.Now().UTC().Truncate(time.Second)
	return writeJSONAtomic(ManifestPath(w.basePath), m)
}

func writeJSONAtomic(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(target), err)
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
