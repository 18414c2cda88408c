package players

import "strings"

// positionRule is one guarded step of the stats-only fallback ladder.
type positionRule struct {
	match    func(StatLine) bool
	position Position
}

// fallbackLadder is evaluated top to bottom; the first match wins.
var fallbackLadder = []positionRule{
	{func(s StatLine) bool { return s.Rebounds > 8 && s.Blocks > 1 }, Center},
	{func(s StatLine) bool { return s.Rebounds > 10 }, Center},
	{func(s StatLine) bool { return s.Rebounds > 6 }, PowerForward},
	{func(s StatLine) bool { return s.Assists > 5 }, PointGuard},
	{func(s StatLine) bool { return s.Assists > 3 && s.Points < 18 }, PointGuard},
	{func(s StatLine) bool { return s.Points > 15 && s.Rebounds < 5 && s.Assists < 5 }, ShootingGuard},
}

var longForms = map[string]string{
	"GUARD":          "G",
	"FORWARD":        "F",
	"CENTER":         "C",
	"GUARD-FORWARD":  "G-F",
	"FORWARD-GUARD":  "F-G",
	"FORWARD-CENTER": "F-C",
	"CENTER-FORWARD": "C-F",
	"GUARD-CENTER":   "G-C",
	"CENTER-GUARD":   "C-G",
}

// NormalizePosition maps a provider position code (G, F, C, hyphenated combos,
// or nothing at all) plus the player's stat line onto a canonical position.
// It always returns a label.
func NormalizePosition(raw string, s StatLine) Position {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if long, ok := longForms[code]; ok {
		code = long
	}

	switch code {
	case "C":
		return Center
	case "G":
		return guard(s)
	case "F":
		return forward(s)
	case "F-C", "C-F":
		return PowerForward
	}

	if primary, _, ok := strings.Cut(code, "-"); ok {
		switch primary {
		case "C":
			return Center
		case "G":
			return guard(s)
		case "F":
			return forward(s)
		}
	}

	return fromStats(s)
}

func guard(s StatLine) Position {
	if s.Assists > 4 || (s.Assists > 2 && s.Points < 15) {
		return PointGuard
	}
	return ShootingGuard
}

func forward(s StatLine) Position {
	if s.Rebounds > 6 || s.Blocks > 1 {
		return PowerForward
	}
	return SmallForward
}

func fromStats(s StatLine) Position {
	for _, rule := range fallbackLadder {
		if rule.match(s) {
			return rule.position
		}
	}
	return SmallForward
}
