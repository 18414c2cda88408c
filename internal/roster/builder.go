package roster

import (
	"math"
	"sort"

	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/domain/teams"
	"garu-data-service/internal/providers"
)

// Build converts one upstream row into a canonical record.
func Build(row providers.RawStatRow, positions map[int64]string, season string) players.Record {
	stats := players.StatLine{
		Points:   round1(row.Points),
		Rebounds: round1(row.Rebounds),
		Assists:  round1(row.Assists),
		Steals:   round1(row.Steals),
		Blocks:   round1(row.Blocks),
		FGPct:    percent(row.FGPct),
	}

	return players.Record{
		ID:          row.PlayerID,
		Name:        row.PlayerName,
		Team:        teams.Resolve(row.TeamID, row.TeamAbbreviation),
		Position:    players.NormalizePosition(positions[row.PlayerID], stats),
		Age:         int(math.Max(0, row.Age)),
		GamesPlayed: max(0, row.GamesPlayed),
		Minutes:     round1(row.Minutes),
		StatLine:    stats,
		FG3Pct:      percent(row.FG3Pct),
		FTPct:       percent(row.FTPct),
		Rating:      rate(stats, row.FGPct),
		Season:      season,
	}
}

// BuildRoster builds every row and orders the result by points per game.
// Ties keep their input order.
func BuildRoster(rows []providers.RawStatRow, positions map[int64]string, season string) players.Roster {
	out := make(players.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, Build(row, positions, season))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}

// rate scores the stat line using the upstream field-goal fraction rather than the
// rounded display percentage.
func rate(stats players.StatLine, fgFraction float64) int {
	if math.IsNaN(fgFraction) || math.IsInf(fgFraction, 0) {
		fgFraction = 0
	}
	stats.FGPct = fgFraction
	return players.Rate(stats)
}

// percent scales 0-1 fractions (1 included) to 0-100 and rounds to one decimal.
func percent(v float64) float64 {
	if v <= 1.0 {
		v *= 100
	}
	return round1(v)
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
