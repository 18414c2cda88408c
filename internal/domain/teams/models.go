package teams

// Team represents a current NBA franchise.
// Kept in its own package so players, journeys and providers can share the static table.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// FreeAgent is the team code used when a player's team cannot be resolved.
const FreeAgent = "FA"

const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)
