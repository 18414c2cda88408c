package testutil

import (
	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

// SamplePlayer returns a minimal record with the provided id and scoring line.
func SamplePlayer(id int64, team string, pos players.Position, pts float64, gp int) players.Record {
	stats := players.StatLine{Points: pts, Rebounds: 5, Assists: 4, FGPct: 47.5}
	return players.Record{
		ID:          id,
		Name:        "Player " + team,
		Team:        team,
		Position:    pos,
		GamesPlayed: gp,
		Minutes:     30,
		StatLine:    stats,
		Rating:      players.Rate(stats),
		Season:      "2025-26",
	}
}

// SampleRoster returns a small roster ordered by points per game.
func SampleRoster() players.Roster {
	return players.Roster{
		SamplePlayer(1, "OKC", players.PointGuard, 32.1, 60),
		SamplePlayer(2, "LAL", players.SmallForward, 24.4, 55),
		SamplePlayer(3, "BOS", players.PowerForward, 17.9, 50),
		SamplePlayer(4, "BOS", players.Center, 11.2, 45),
		SamplePlayer(5, "MIA", players.ShootingGuard, 8.6, 30),
	}
}

// SampleJourney returns a journey record spanning the given teams.
func SampleJourney(id int64, teams ...string) journeys.Record {
	current := ""
	if len(teams) > 0 {
		current = teams[len(teams)-1]
	}
	return journeys.Record{ID: id, Name: "Journeyman", Teams: teams, CurrentTeam: current}
}
