package journey

import (
	"strings"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/teams"
	"garu-data-service/internal/providers"
)

// CombinedStatsMarker is the team code the upstream uses for a season's combined
// line when a player was traded mid-season. Those rows are not stints.
const CombinedStatsMarker = "TOT"

// Reconstruct turns chronological career rows into the ordered list of distinct
// franchises, with historical codes mapped to their current successor.
func Reconstruct(rows []providers.CareerRow) []string {
	out := []string{}
	for _, row := range rows {
		code := teamCode(row)
		if code == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == code {
			continue
		}
		out = append(out, code)
	}
	return out
}

// NewRecord reconstructs one player's journey. currentTeam falls back to the last stint.
func NewRecord(id int64, name, currentTeam string, rows []providers.CareerRow) journeys.Record {
	path := Reconstruct(rows)
	if currentTeam == "" && len(path) > 0 {
		currentTeam = path[len(path)-1]
	}
	return journeys.Record{ID: id, Name: name, Teams: path, CurrentTeam: currentTeam}
}

func teamCode(row providers.CareerRow) string {
	if strings.EqualFold(strings.TrimSpace(row.TeamAbbreviation), CombinedStatsMarker) {
		return ""
	}
	code, ok := teams.AbbreviationForID(row.TeamID)
	if !ok {
		code = strings.ToUpper(strings.TrimSpace(row.TeamAbbreviation))
	}
	if code == "" {
		return ""
	}
	return teams.CurrentAbbreviation(code)
}
