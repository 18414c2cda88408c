package journeys

// MinUsableTeams is the shortest journey the team-journey game can use.
const MinUsableTeams = 2

// Record is a player's career as the ordered list of distinct franchises played for.
type Record struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Teams       []string `json:"teams"`
	CurrentTeam string   `json:"current_team"`
}

// Qualifies reports whether the journey has at least minTeams stints.
func (r Record) Qualifies(minTeams int) bool {
	if minTeams < MinUsableTeams {
		minTeams = MinUsableTeams
	}
	return len(r.Teams) >= minTeams
}

// Filter returns the records whose journeys have at least minTeams stints.
func Filter(records []Record, minTeams int) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Qualifies(minTeams) {
			out = append(out, r)
		}
	}
	return out
}
