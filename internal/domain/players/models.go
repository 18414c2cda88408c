package players

import "strings"

// Position is one of the five canonical basketball positions.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists the canonical positions in lineup order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// ParsePosition matches a canonical label case-insensitively.
func ParsePosition(raw string) (Position, bool) {
	for _, p := range Positions {
		if strings.EqualFold(string(p), strings.TrimSpace(raw)) {
			return p, true
		}
	}
	return "", false
}

// StatLine is a player's per-game production. FGPct may be a 0-1 fraction or a 0-100 percentage.
type StatLine struct {
	Points   float64 `json:"pts"`
	Rebounds float64 `json:"reb"`
	Assists  float64 `json:"ast"`
	Steals   float64 `json:"stl"`
	Blocks   float64 `json:"blk"`
	FGPct    float64 `json:"fg_pct"`
}

// Record is the canonical player shape served to callers and persisted in every cache tier.
// Records are rebuilt wholesale on each live fetch and never edited in place.
type Record struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Team        string   `json:"team"`
	Position    Position `json:"position"`
	Age         int      `json:"age,omitempty"`
	GamesPlayed int      `json:"gp"`
	Minutes     float64  `json:"mpg"`
	StatLine
	FG3Pct float64 `json:"fg3_pct"`
	FTPct  float64 `json:"ft_pct"`
	Rating int     `json:"rating"`
	Season string  `json:"season"`
}

// Roster is a season's records ordered by points per game, highest first.
type Roster []Record

// Clone returns a shallow copy so callers can reorder without touching the cached slice.
func (r Roster) Clone() Roster {
	if r == nil {
		return Roster{}
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
