package snapshots

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"
)

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root.
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// LoadRoster reads the roster snapshot for a season. A missing file is ErrNotFound;
// unreadable JSON or a bad timestamp is ErrCorrupt.
func (s *FSStore) LoadRoster(season string) (RosterDocument, error) {
	if s == nil {
		return RosterDocument{}, ErrNotFound
	}
	var doc RosterDocument
	if err := decodeFile(RosterSnapshotPath(s.basePath, season), &doc); err != nil {
		return RosterDocument{}, err
	}
	if _, err := doc.CapturedAt(); err != nil {
		return RosterDocument{}, err
	}
	if doc.Season == "" {
		doc.Season = season
	}
	doc.Count = len(doc.Players)
	return doc, nil
}

// LoadJourneys reads the journey snapshot.
func (s *FSStore) LoadJourneys() (JourneyDocument, error) {
	if s == nil {
		return JourneyDocument{}, ErrNotFound
	}
	var doc JourneyDocument
	if err := decodeFile(JourneySnapshotPath(s.basePath), &doc); err != nil {
		return JourneyDocument{}, err
	}
	if _, err := doc.CapturedAt(); err != nil {
		return JourneyDocument{}, err
	}
	return doc, nil
}

// LoadManifest reads the manifest written alongside the snapshots.
func (s *FSStore) LoadManifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, ErrNotFound
	}
	var m Manifest
	if err := decodeFile(ManifestPath(s.basePath), &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func decodeFile(path string, payload any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: read %s: %v", ErrCorrupt, path, err)
	}
	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCorrupt, path, err)
	}
	return nil
}
