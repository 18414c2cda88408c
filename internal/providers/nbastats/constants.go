package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	leagueID           = "00"
	regularSeason      = "Regular Season"

	// Cap on a single response body; a full league per-game table is well under this.
	maxBodyBytes = 8 << 20

	endpointLeagueStats = "leaguedashplayerstats"
	endpointPlayerIndex = "playerindex"
	endpointCareerStats = "playercareerstats"

	careerResultSet = "SeasonTotalsRegularSeason"
)
