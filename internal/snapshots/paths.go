package snapshots

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	journeyFileName  = "journey_players.json"
	manifestFileName = "manifest.json"
)

// RosterFileName returns the snapshot file name for a season, e.g. nba_players_2025_26.json.
func RosterFileName(season string) string {
	slug := strings.NewReplacer("-", "_", "/", "_", " ", "_").Replace(strings.TrimSpace(season))
	return fmt.Sprintf("nba_players_%s.json", slug)
}

// RosterSnapshotPath builds the path to a season's roster snapshot.
func RosterSnapshotPath(basePath, season string) string {
	return filepath.Join(basePath, RosterFileName(season))
}

// JourneySnapshotPath builds the path to the journey snapshot.
func JourneySnapshotPath(basePath string) string {
	return filepath.Join(basePath, journeyFileName)
}

// ManifestPath builds the path to the snapshot manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFileName)
}
