package roster

import (
	"math/rand"
	"testing"
	"time"

	"garu-data-service/internal/domain/players"
)

func sampleRoster() players.Roster {
	return players.Roster{
		{ID: 1, Name: "Luka Doncic", Team: "LAL", Position: players.PointGuard, GamesPlayed: 50, StatLine: players.StatLine{Points: 33}, Rating: 95},
		{ID: 2, Name: "Shai Gilgeous-Alexander", Team: "OKC", Position: players.PointGuard, GamesPlayed: 60, StatLine: players.StatLine{Points: 32}, Rating: 99},
		{ID: 3, Name: "Giannis Antetokounmpo", Team: "MIL", Position: players.PowerForward, GamesPlayed: 9, StatLine: players.StatLine{Points: 30}, Rating: 97},
		{ID: 4, Name: "Austin Reaves", Team: "LAL", Position: players.ShootingGuard, GamesPlayed: 55, StatLine: players.StatLine{Points: 17}, Rating: 85},
		{ID: 5, Name: "Alex Caruso", Team: "OKC", Position: players.ShootingGuard, GamesPlayed: 40, StatLine: players.StatLine{Points: 8}, Rating: 70},
		{ID: 6, Name: "Bench Guy", Team: "FA", Position: players.Center, GamesPlayed: 70, StatLine: players.StatLine{Points: 12}, Rating: 72},
	}
}

func ids(r players.Roster) []int64 {
	out := make([]int64, len(r))
	for i, p := range r {
		out[i] = p.ID
	}
	return out
}

func sameIDs(got players.Roster, want ...int64) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range want {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func TestByTeamAndPositionIgnoreCase(t *testing.T) {
	r := sampleRoster()
	if got := ByTeam(r, "lal"); !sameIDs(got, 1, 4) {
		t.Fatalf("unexpected team filter %v", ids(got))
	}
	if got := ByPosition(r, "sg"); !sameIDs(got, 4, 5) {
		t.Fatalf("unexpected position filter %v", ids(got))
	}
	if got := ByTeam(r, "BOS"); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil roster, got %v", got)
	}
}

func TestStarsRequireGames(t *testing.T) {
	if got := Stars(sampleRoster(), DefaultStarPoints); !sameIDs(got, 1, 2) {
		t.Fatalf("expected Giannis excluded on games played, got %v", ids(got))
	}
	if got := MinPoints(sampleRoster(), 30); !sameIDs(got, 1, 2, 3) {
		t.Fatalf("unexpected min points filter %v", ids(got))
	}
}

func TestRolePlayersOrderedByGames(t *testing.T) {
	if got := RolePlayers(sampleRoster(), 10); !sameIDs(got, 6, 4, 5) {
		t.Fatalf("unexpected role players %v", ids(got))
	}
	if got := RolePlayers(sampleRoster(), 1); !sameIDs(got, 6) {
		t.Fatalf("expected truncation, got %v", ids(got))
	}
}

func TestTopByRatingDoesNotMutate(t *testing.T) {
	r := sampleRoster()
	got := TopByRating(r, 2)
	if !sameIDs(got, 2, 3) {
		t.Fatalf("unexpected top by rating %v", ids(got))
	}
	if r[0].ID != 1 {
		t.Fatalf("expected source roster untouched")
	}
	big := make(players.Roster, 150)
	for i := range big {
		big[i].ID = int64(i)
	}
	if got := TopByRating(big, 500); len(got) != MaxTop {
		t.Fatalf("expected cap at %d, got %d", MaxTop, len(got))
	}
}

func TestRandomSamplesWithoutReplacement(t *testing.T) {
	r := sampleRoster()
	rng := rand.New(rand.NewSource(7))
	got := Random(r, 4, rng)
	if len(got) != 4 {
		t.Fatalf("expected 4 players, got %d", len(got))
	}
	seen := map[int64]bool{}
	for _, p := range got {
		if seen[p.ID] {
			t.Fatalf("duplicate player %d", p.ID)
		}
		seen[p.ID] = true
	}
	if got := Random(r, 50, rng); len(got) != len(r) {
		t.Fatalf("expected sample capped at roster size, got %d", len(got))
	}
	if got := Random(nil, 3, rng); len(got) != 0 {
		t.Fatalf("expected empty sample, got %v", got)
	}
	if r[0].ID != 1 || r[5].ID != 6 {
		t.Fatalf("expected source roster untouched")
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	if got := Search(sampleRoster(), "  AL "); !sameIDs(got, 2, 5) {
		t.Fatalf("unexpected search result %v", ids(got))
	}
	if got := Search(sampleRoster(), ""); len(got) != 0 {
		t.Fatalf("expected blank query to match nothing")
	}
}

func TestFindByID(t *testing.T) {
	if p, ok := FindByID(sampleRoster(), 4); !ok || p.Name != "Austin Reaves" {
		t.Fatalf("expected player 4, got %+v ok=%v", p, ok)
	}
	if _, ok := FindByID(sampleRoster(), 404); ok {
		t.Fatalf("expected missing player")
	}
}

func TestDailyIsDeterministic(t *testing.T) {
	date := time.Date(2025, 11, 1, 18, 30, 0, 0, time.UTC)
	if got := DailyIndex(date, 7); got != 3 {
		t.Fatalf("expected md5 index 3, got %d", got)
	}
	if got := DailyIndex(date, 50); got != 31 {
		t.Fatalf("expected md5 index 31, got %d", got)
	}

	r := sampleRoster()
	// Pool is players 1, 2 and 4 (pts >= 15 and gp >= 20); index 0 for this date.
	first, ok := Daily(r, date)
	if !ok || first.ID != 1 {
		t.Fatalf("expected player 1, got %+v ok=%v", first, ok)
	}
	second, _ := Daily(r, date)
	if first.ID != second.ID {
		t.Fatalf("expected same pick on same date")
	}
}

func TestDailyFallsBackToFirstPlayers(t *testing.T) {
	r := players.Roster{{ID: 10, GamesPlayed: 1}, {ID: 11, GamesPlayed: 1}, {ID: 12, GamesPlayed: 1}}
	got, ok := Daily(r, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if !ok || got.ID != 12 {
		t.Fatalf("expected fallback pool index 2, got %+v ok=%v", got, ok)
	}
	if _, ok := Daily(nil, time.Now()); ok {
		t.Fatalf("expected no pick from empty roster")
	}
}

func TestForDraftMixesTiers(t *testing.T) {
	r := make(players.Roster, 40)
	for i := range r {
		r[i] = players.Record{ID: int64(i + 1), StatLine: players.StatLine{Points: float64(40 - i)}}
	}
	got := ForDraft(r, 5, rand.New(rand.NewSource(1)))
	if len(got) != 5 {
		t.Fatalf("expected 5 picks, got %d", len(got))
	}
	stars := 0
	for _, p := range got {
		switch {
		case p.ID <= 10:
			stars++
		case p.ID > 30:
			t.Fatalf("pick %d outside the top 30", p.ID)
		}
	}
	if stars != 2 {
		t.Fatalf("expected 2 top-tier picks, got %d", stars)
	}

	small := sampleRoster()
	if got := ForDraft(small, 10, rand.New(rand.NewSource(1))); len(got) != len(small) || got[0].ID != 1 {
		t.Fatalf("expected small roster returned in order, got %v", ids(got))
	}
}
