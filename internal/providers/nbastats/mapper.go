package nbastats

import (
	"strings"

	"garu-data-service/internal/providers"
)

func mapLeagueRows(set resultSet) []providers.RawStatRow {
	rows := set.rows()
	out := make([]providers.RawStatRow, 0, len(rows))
	for _, r := range rows {
		id := r.int64("PLAYER_ID")
		if id == 0 {
			continue
		}
		out = append(out, providers.RawStatRow{
			PlayerID:         id,
			PlayerName:       r.string("PLAYER_NAME"),
			TeamID:           r.int64("TEAM_ID"),
			TeamAbbreviation: r.string("TEAM_ABBREVIATION"),
			Age:              r.float("AGE"),
			GamesPlayed:      int(r.int64("GP")),
			Minutes:          r.float("MIN"),
			Points:           r.float("PTS"),
			Rebounds:         r.float("REB"),
			Assists:          r.float("AST"),
			Steals:           r.float("STL"),
			Blocks:           r.float("BLK"),
			FGPct:            r.float("FG_PCT"),
			FG3Pct:           r.float("FG3_PCT"),
			FTPct:            r.float("FT_PCT"),
		})
	}
	return out
}

func mapPositions(set resultSet) map[int64]string {
	out := make(map[int64]string, len(set.RowSet))
	for _, r := range set.rows() {
		id := r.int64("PERSON_ID")
		if id == 0 {
			continue
		}
		if pos := strings.ToUpper(r.string("POSITION")); pos != "" {
			out[id] = pos
		}
	}
	return out
}

func mapCareerRows(set resultSet) []providers.CareerRow {
	rows := set.rows()
	out := make([]providers.CareerRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, providers.CareerRow{
			Season:           r.string("SEASON_ID"),
			TeamID:           r.int64("TEAM_ID"),
			TeamAbbreviation: strings.ToUpper(r.string("TEAM_ABBREVIATION")),
		})
	}
	return out
}
