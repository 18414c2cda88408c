package snapshots

import "time"

const manifestVersion = 1

// Manifest tracks what the snapshot directory currently holds.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Roster      RosterMeta  `json:"roster"`
	Journeys    JourneyMeta `json:"journeys"`
}

type RosterMeta struct {
	File          string    `json:"file"`
	Season        string    `json:"season"`
	Count         int       `json:"count"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

type JourneyMeta struct {
	File          string    `json:"file"`
	Count         int       `json:"count"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{Version: manifestVersion}
}
