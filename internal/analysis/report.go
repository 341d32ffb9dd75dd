package analysis

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport renders recommendations grouped by risk tier: mainline first,
// then longshots, then whatever sits between the thresholds. Purely a
// presentation of already-computed records.
func WriteReport(w io.Writer, recs []Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No bets to display")
		return
	}

	var mainline, longshot, midrange []Recommendation
	for _, rec := range recs {
		switch {
		case rec.IsMainline:
			mainline = append(mainline, rec)
		case rec.IsLongshot:
			longshot = append(longshot, rec)
		default:
			midrange = append(midrange, rec)
		}
	}

	writeSection(w, "MAINLINE OPTIONS", mainline)
	writeSection(w, "LONGSHOT OPTIONS", longshot)
	writeSection(w, "MID-RANGE OPTIONS", midrange)

	var evSum float64
	for _, rec := range recs {
		evSum += rec.EV
	}

	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "Total bets: %d (mainline: %d, longshots: %d)\n",
		len(recs), len(mainline), len(longshot))
	fmt.Fprintf(w, "Average EV: %.3f\n", evSum/float64(len(recs)))
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func writeSection(w io.Writer, title string, recs []Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	for _, rec := range recs {
		fmt.Fprintln(w, FormatRecommendation(rec, StyleDetailed))
	}
}
