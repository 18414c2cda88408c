package teams

import "strings"

var all = []Team{
	{ID: 1610612737, Abbreviation: "ATL", Name: "Hawks", FullName: "Atlanta Hawks", City: "Atlanta", Conference: ConferenceEast, Division: "Southeast"},
	{ID: 1610612738, Abbreviation: "BOS", Name: "Celtics", FullName: "Boston Celtics", City: "Boston", Conference: ConferenceEast, Division: "Atlantic"},
	{ID: 1610612739, Abbreviation: "CLE", Name: "Cavaliers", FullName: "Cleveland Cavaliers", City: "Cleveland", Conference: ConferenceEast, Division: "Central"},
	{ID: 1610612740, Abbreviation: "NOP", Name: "Pelicans", FullName: "New Orleans Pelicans", City: "New Orleans", Conference: ConferenceWest, Division: "Southwest"},
	{ID: 1610612741, Abbreviation: "CHI", Name: "Bulls", FullName: "Chicago Bulls", City: "Chicago", Conference: ConferenceEast, Division: "Central"},
	{ID: 1610612742, Abbreviation: "DAL", Name: "Mavericks", FullName: "Dallas Mavericks", City: "Dallas", Conference: ConferenceWest, Division: "Southwest"},
	{ID: 1610612743, Abbreviation: "DEN", Name: "Nuggets", FullName: "Denver Nuggets", City: "Denver", Conference: ConferenceWest, Division: "Northwest"},
	{ID: 1610612744, Abbreviation: "GSW", Name: "Warriors", FullName: "Golden State Warriors", City: "San Francisco", Conference: ConferenceWest, Division: "Pacific"},
	{ID: 1610612745, Abbreviation: "HOU", Name: "Rockets", FullName: "Houston Rockets", City: "Houston", Conference: ConferenceWest, Division: "Southwest"},
	{ID: 1610612746, Abbreviation: "LAC", Name: "Clippers", FullName: "LA Clippers", City: "Los Angeles", Conference: ConferenceWest, Division: "Pacific"},
	{ID: 1610612747, Abbreviation: "LAL", Name: "Lakers", FullName: "Los Angeles Lakers", City: "Los Angeles", Conference: ConferenceWest, Division: "Pacific"},
	{ID: 1610612748, Abbreviation: "MIA", Name: "Heat", FullName: "Miami Heat", City: "Miami", Conference: ConferenceEast, Division: "Southeast"},
	{ID: 1610612749, Abbreviation: "MIL", Name: "Bucks", FullName: "Milwaukee Bucks", City: "Milwaukee", Conference: ConferenceEast, Division: "Central"},
	{ID: 1610612750, Abbreviation: "MIN", Name: "Timberwolves", FullName: "Minnesota Timberwolves", City: "Minneapolis", Conference: ConferenceWest, Division: "Northwest"},
	{ID: 1610612751, Abbreviation: "BKN", Name: "Nets", FullName: "Brooklyn Nets", City: "Brooklyn", Conference: ConferenceEast, Division: "Atlantic"},
	{ID: 1610612752, Abbreviation: "NYK", Name: "Knicks", FullName: "New York Knicks", City: "New York", Conference: ConferenceEast, Division: "Atlantic"},
	{ID: 1610612753, Abbreviation: "ORL", Name: "Magic", FullName: "Orlando Magic", City: "Orlando", Conference: ConferenceEast, Division: "Southeast"},
	{ID: 1610612754, Abbreviation: "IND", Name: "Pacers", FullName: "Indiana Pacers", City: "Indianapolis", Conference: ConferenceEast, Division: "Central"},
	{ID: 1610612755, Abbreviation: "PHI", Name: "76ers", FullName: "Philadelphia 76ers", City: "Philadelphia", Conference: ConferenceEast, Division: "Atlantic"},
	{ID: 1610612756, Abbreviation: "PHX", Name: "Suns", FullName: "Phoenix Suns", City: "Phoenix", Conference: ConferenceWest, Division: "Pacific"},
	{ID: 1610612757, Abbreviation: "POR", Name: "Trail Blazers", FullName: "Portland Trail Blazers", City: "Portland", Conference: ConferenceWest, Division: "Northwest"},
	{ID: 1610612758, Abbreviation: "SAC", Name: "Kings", FullName: "Sacramento Kings", City: "Sacramento", Conference: ConferenceWest, Division: "Pacific"},
	{ID: 1610612759, Abbreviation: "SAS", Name: "Spurs", FullName: "San Antonio Spurs", City: "San Antonio", Conference: ConferenceWest, Division: "Southwest"},
	{ID: 1610612760, Abbreviation: "OKC", Name: "Thunder", FullName: "Oklahoma City Thunder", City: "Oklahoma City", Conference: ConferenceWest, Division: "Northwest"},
	{ID: 1610612761, Abbreviation: "TOR", Name: "Raptors", FullName: "Toronto Raptors", City: "Toronto", Conference: ConferenceEast, Division: "Atlantic"},
	{ID: 1610612762, Abbreviation: "UTA", Name: "Jazz", FullName: "Utah Jazz", City: "Salt Lake City", Conference: ConferenceWest, Division: "Northwest"},
	{ID: 1610612763, Abbreviation: "MEM", Name: "Grizzlies", FullName: "Memphis Grizzlies", City: "Memphis", Conference: ConferenceWest, Division: "Southwest"},
	{ID: 1610612764, Abbreviation: "WAS", Name: "Wizards", FullName: "Washington Wizards", City: "Washington", Conference: ConferenceEast, Division: "Southeast"},
	{ID: 1610612765, Abbreviation: "DET", Name: "Pistons", FullName: "Detroit Pistons", City: "Detroit", Conference: ConferenceEast, Division: "Central"},
	{ID: 1610612766, Abbreviation: "CHA", Name: "Hornets", FullName: "Charlotte Hornets", City: "Charlotte", Conference: ConferenceEast, Division: "Southeast"},
}

// historical maps relocated or renamed franchise codes to their current successor.
var historical = map[string]string{
	"SEA": "OKC",
	"VAN": "MEM",
	"NJN": "BKN",
	"NOH": "NOP",
	"NOK": "NOP",
	"CHH": "CHA",
}

var (
	byID   = make(map[int64]Team, len(all))
	byAbbr = make(map[string]Team, len(all))
)

func init() {
	for _, t := range all {
		byID[t.ID] = t
		byAbbr[t.Abbreviation] = t
	}
}

// All returns a copy of the current franchise table in id order.
func All() []Team {
	out := make([]Team, len(all))
	copy(out, all)
	return out
}

// AbbreviationForID resolves an NBA team id to its abbreviation.
func AbbreviationForID(id int64) (string, bool) {
	t, ok := byID[id]
	return t.Abbreviation, ok
}

// ByAbbreviation looks up a current franchise, case-insensitively.
func ByAbbreviation(abbr string) (Team, bool) {
	t, ok := byAbbr[strings.ToUpper(strings.TrimSpace(abbr))]
	return t, ok
}

// CurrentAbbreviation maps historical franchise codes to their successor.
// Unknown codes are returned upper-cased and otherwise unchanged.
func CurrentAbbreviation(abbr string) string {
	code := strings.ToUpper(strings.TrimSpace(abbr))
	if current, ok := historical[code]; ok {
		return current
	}
	return code
}

// Resolve picks the abbreviation for a team id, falling back to the provided
// abbreviation and finally to FreeAgent.
func Resolve(id int64, fallback string) string {
	if abbr, ok := AbbreviationForID(id); ok {
		return abbr
	}
	if code := strings.ToUpper(strings.TrimSpace(fallback)); code != "" {
		return code
	}
	return FreeAgent
}
