package providers

import "context"

// Logical upstream call names, used for throttling, logging and metrics.
const (
	CallLeagueStats     = "league_stats"
	CallPlayerPositions = "player_positions"
	CallCareerRows      = "career_rows"
)

// RawStatRow is one player's per-game season line as the provider reports it.
// Percentages may arrive as 0-1 fractions or 0-100 values.
type RawStatRow struct {
	PlayerID         int64
	PlayerName       string
	TeamID           int64
	TeamAbbreviation string
	Age              float64
	GamesPlayed      int
	Minutes          float64
	Points           float64
	Rebounds         float64
	Assists          float64
	Steals           float64
	Blocks           float64
	FGPct            float64
	FG3Pct           float64
	FTPct            float64
}

// CareerRow is one season/team stint from a player's career totals, in chronological order.
type CareerRow struct {
	Season           string
	TeamID           int64
	TeamAbbreviation string
}

// StatsProvider is the upstream stats boundary. Every failure wraps ErrUpstreamUnavailable.
type StatsProvider interface {
	FetchLeagueStats(ctx context.Context, season string) ([]RawStatRow, error)
	FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error)
	FetchCareerRows(ctx context.Context, playerID int64) ([]CareerRow, error)
}
