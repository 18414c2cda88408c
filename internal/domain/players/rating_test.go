package players

import (
	"math"
	"math/rand"
	"testing"
)

func TestRateFormula(t *testing.T) {
	// 50 + 15 + 4 + 6 + 2 + 1 + 9 = 87
	s := StatLine{Points: 10, Rebounds: 5, Assists: 5, Steals: 1, Blocks: 0.5, FGPct: 45}
	if got := Rate(s); got != 87 {
		t.Fatalf("expected 87, got %d", got)
	}
	s.FGPct = 0.45
	if got := Rate(s); got != 87 {
		t.Fatalf("expected fraction input to match percentage input, got %d", got)
	}
}

func TestFGFractionTreatsOneAsPerfect(t *testing.T) {
	if got := FGFraction(1); got != 1 {
		t.Fatalf("expected 1 to stay a full fraction, got %v", got)
	}
	if got := FGFraction(100); got != 1 {
		t.Fatalf("expected 100 to scale to 1, got %v", got)
	}
	if got := FGFraction(0.009); got != 0.009 {
		t.Fatalf("expected small fraction unchanged, got %v", got)
	}
}

func TestRateRounds(t *testing.T) {
	// 50 + 1.5*7 = 60.5 rounds to 61
	if got := Rate(StatLine{Points: 7}); got != 61 {
		t.Fatalf("expected 61, got %d", got)
	}
}

func TestRateClampsExtremes(t *testing.T) {
	if got := Rate(StatLine{}); got != MinRating {
		t.Fatalf("expected floor %d for empty line, got %d", MinRating, got)
	}
	huge := StatLine{Points: 1e9, Rebounds: 1e9, Assists: 1e9, Steals: 1e9, Blocks: 1e9, FGPct: 1e9}
	if got := Rate(huge); got != MaxRating {
		t.Fatalf("expected ceiling %d, got %d", MaxRating, got)
	}
	if got := Rate(StatLine{Points: math.Inf(1)}); got != MaxRating {
		t.Fatalf("expected ceiling for +Inf, got %d", got)
	}
	if got := Rate(StatLine{Points: math.NaN()}); got != MinRating {
		t.Fatalf("expected floor for NaN, got %d", got)
	}
}

func TestRateAlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		s := StatLine{
			Points:   rng.Float64() * 80,
			Rebounds: rng.Float64() * 40,
			Assists:  rng.Float64() * 30,
			Steals:   rng.Float64() * 10,
			Blocks:   rng.Float64() * 10,
			FGPct:    rng.Float64() * 100,
		}
		if i%3 == 0 {
			s.Points = -s.Points * 1e6
		}
		if got := Rate(s); got < MinRating || got > MaxRating {
			t.Fatalf("rating %d out of bounds for %+v", got, s)
		}
	}
}
