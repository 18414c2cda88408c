package players

import "math"

const (
	MinRating = 60
	MaxRating = 99
)

// Rate derives the synthetic 60-99 rating from a stat line:
// round(50 + 1.5pts + 0.8reb + 1.2ast + 2stl + 2blk + 20*fg), clamped.
func Rate(s StatLine) int {
	raw := 50 +
		1.5*s.Points +
		0.8*s.Rebounds +
		1.2*s.Assists +
		2*s.Steals +
		2*s.Blocks +
		20*FGFraction(s.FGPct)

	if math.IsNaN(raw) {
		return MinRating
	}
	rounded := math.Round(raw)
	if rounded < MinRating {
		return MinRating
	}
	if rounded > MaxRating {
		return MaxRating
	}
	return int(rounded)
}

// FGFraction returns a field-goal percentage as a 0-1 fraction whichever scale it arrived in.
// Exactly 1 is a perfect fraction, not one percent.
func FGFraction(pct float64) float64 {
	if pct > 1 {
		return pct / 100
	}
	return pct
}
