package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"nba-prop-bets/internal/odds"
)

// Style selects the textual rendering of a recommendation.
type Style string

const (
	// StyleDetailed: Player OVER 24.5 Points +1140 (0.12u - FV: -117) @ DRAFTKINGS
	StyleDetailed Style = "detailed"
	// StyleEV: Player OVER 24.5 Points (+1140 - FV -117): EV=5.69
	StyleEV Style = "ev"
	// StyleSimple: Player OVER 24.5 Points +1140 (0.12u) @ DRAFTKINGS
	StyleSimple Style = "simple"
)

// FormatRecommendation renders a recommendation. It only reads the record:
// probability, EV and sizing are never recomputed at format time.
func FormatRecommendation(rec Recommendation, style Style) string {
	desc := fmt.Sprintf("%s %s %s %s",
		rec.Player,
		strings.ToUpper(string(rec.Direction)),
		formatLine(rec.Line),
		capitalize(string(rec.Stat)),
	)

	switch style {
	case StyleEV:
		return fmt.Sprintf("%s (%s - FV %s): EV=%.2f",
			desc, odds.Format(rec.Odds), odds.Format(rec.FairValue), rec.EV)
	case StyleSimple:
		return fmt.Sprintf("%s %s (%.2fu) @ %s",
			desc, odds.Format(rec.Odds), rec.Units, strings.ToUpper(string(rec.Book)))
	default:
		return fmt.Sprintf("%s %s (%.2fu - FV: %s) @ %s",
			desc, odds.Format(rec.Odds), rec.Units, odds.Format(rec.FairValue),
			strings.ToUpper(string(rec.Book)))
	}
}

func formatLine(line float64) string {
	return strconv.FormatFloat(line, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
