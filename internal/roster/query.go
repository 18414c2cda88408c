package roster

import (
	"crypto/md5"
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"time"

	"garu-data-service/internal/domain/players"
)

// Query thresholds.
const (
	DefaultStarPoints = 20.0
	starMinGames      = 10

	roleMinPoints = 8.0
	roleMaxPoints = 18.0
	roleMinGames  = 15

	MaxTop = 100

	dailyMinPoints = 15.0
	dailyMinGames  = 20
	dailyFallback  = 50

	draftTopTier = 10
	draftMidTier = 30
	draftStars   = 2
)

// ByTeam returns players whose team matches abbr, ignoring case.
func ByTeam(r players.Roster, abbr string) players.Roster {
	abbr = strings.TrimSpace(abbr)
	return filter(r, func(p players.Record) bool {
		return strings.EqualFold(p.Team, abbr)
	})
}

// ByPosition returns players whose canonical position matches pos, ignoring case.
func ByPosition(r players.Roster, pos string) players.Roster {
	pos = strings.TrimSpace(pos)
	return filter(r, func(p players.Record) bool {
		return strings.EqualFold(string(p.Position), pos)
	})
}

// MinPoints returns players scoring at least minPts.
func MinPoints(r players.Roster, minPts float64) players.Roster {
	return filter(r, func(p players.Record) bool {
		return p.Points >= minPts
	})
}

// Stars returns players scoring at least minPts over 10 or more games.
func Stars(r players.Roster, minPts float64) players.Roster {
	return filter(r, func(p players.Record) bool {
		return p.Points >= minPts && p.GamesPlayed >= starMinGames
	})
}

// RolePlayers returns up to n mid-usage players, most games played first.
func RolePlayers(r players.Roster, n int) players.Roster {
	out := filter(r, func(p players.Record) bool {
		return p.Points >= roleMinPoints && p.Points <= roleMaxPoints && p.GamesPlayed >= roleMinGames
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GamesPlayed > out[j].GamesPlayed
	})
	return truncate(out, n)
}

// TopByRating returns the n highest rated players. n is capped at MaxTop.
func TopByRating(r players.Roster, n int) players.Roster {
	out := r.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return truncate(out, min(n, MaxTop))
}

// Random samples min(n, len(r)) players without replacement.
func Random(r players.Roster, n int, rng *rand.Rand) players.Roster {
	if n <= 0 || len(r) == 0 {
		return players.Roster{}
	}
	pool := r.Clone()
	n = min(n, len(pool))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Search returns players whose name contains q, ignoring case, in roster order.
func Search(r players.Roster, q string) players.Roster {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return players.Roster{}
	}
	return filter(r, func(p players.Record) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// FindByID returns the player with the given id.
func FindByID(r players.Roster, id int64) (players.Record, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return players.Record{}, false
}

// Daily picks the player of the day. The same date and roster always give the same player.
func Daily(r players.Roster, date time.Time) (players.Record, bool) {
	pool := filter(r, func(p players.Record) bool {
		return p.Points >= dailyMinPoints && p.GamesPlayed >= dailyMinGames
	})
	if len(pool) == 0 {
		pool = truncate(r.Clone(), dailyFallback)
	}
	if len(pool) == 0 {
		return players.Record{}, false
	}
	return pool[DailyIndex(date, len(pool))], true
}

// DailyIndex hashes the YYYY-MM-DD date with MD5 and reduces it modulo size.
func DailyIndex(date time.Time, size int) int {
	if size <= 0 {
		return 0
	}
	sum := md5.Sum([]byte(date.Format(time.DateOnly)))
	n := new(big.Int).SetBytes(sum[:])
	return int(n.Mod(n, big.NewInt(int64(size))).Int64())
}

// ForDraft mixes two of the position's top scorers with players from the next tier.
// Rosters no larger than n are returned as-is, truncated.
func ForDraft(r players.Roster, n int, rng *rand.Rand) players.Roster {
	if len(r) <= n {
		return truncate(r.Clone(), n)
	}
	sorted := r.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	top := sorted[:min(draftTopTier, len(sorted))]
	var mid players.Roster
	if len(sorted) > draftTopTier {
		mid = sorted[draftTopTier:min(draftMidTier, len(sorted))]
	}

	selection := Random(top, min(draftStars, n), rng)
	if len(mid) > 0 && n > len(selection) {
		selection = append(selection, Random(mid, n-len(selection), rng)...)
	}
	return selection
}

func filter(r players.Roster, keep func(players.Record) bool) players.Roster {
	out := players.Roster{}
	for _, p := range r {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func truncate(r players.Roster, n int) players.Roster {
	if n < 0 {
		n = 0
	}
	if len(r) > n {
		return r[:n]
	}
	return r
}
