package feed

import (
	"os"
	"strings"
	"testing"

	"nba-prop-bets/internal/analysis"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadPredictions(t *testing.T) {
	csvData := `player,stat,predicted_value,std_dev
Stephen Curry,points,27.4,5.1
Nikola Jokic,rebounds,12.8,
Luka Doncic,Assists,9.2,2.4
`
	preds, err := ReadPredictions(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadPredictions: %v", err)
	}
	if len(preds) != 3 {
		t.Fatalf("got %d predictions, want 3", len(preds))
	}

	if preds[0].Player != "Stephen Curry" || preds[0].Stat != analysis.StatPoints ||
		preds[0].Value != 27.4 || preds[0].StdDev != 5.1 {
		t.Errorf("first prediction = %+v", preds[0])
	}
	if preds[1].StdDev != 0 {
		t.Errorf("empty std_dev parsed as %v, want 0 (derive default)", preds[1].StdDev)
	}
	// Stat names normalize to lowercase.
	if preds[2].Stat != analysis.StatAssists {
		t.Errorf("stat = %q, want assists", preds[2].Stat)
	}
}

func TestReadPredictionsErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"Missing column", "player,predicted_value\nCurry,27.4\n"},
		{"Bad value", "player,stat,predicted_value\nCurry,points,abc\n"},
		{"Bad std dev", "player,stat,predicted_value,std_dev\nCurry,points,27.4,xyz\n"},
		{"Empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPredictions(strings.NewReader(tt.csv)); err == nil {
				t.Error("ReadPredictions accepted malformed snapshot")
			}
		})
	}
}

func TestReadMarketLines(t *testing.T) {
	csvData := `player,stat,line,over_odds,under_odds,book
Stephen Curry,points,26.5,+1140,-130,draftkings
Nikola Jokic,rebounds,12.5,-110,,FanDuel
`
	lines, err := ReadMarketLines(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadMarketLines: %v", err)
	}
	// First row fans out to both sides, second row only quotes the over.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0].Direction != analysis.Over || lines[0].Odds != 1140 {
		t.Errorf("first line = %+v, want over +1140", lines[0])
	}
	if lines[1].Direction != analysis.Under || lines[1].Odds != -130 {
		t.Errorf("second line = %+v, want under -130", lines[1])
	}
	if lines[2].Book != analysis.BookFanDuel {
		t.Errorf("book = %q, want fanduel (normalized)", lines[2].Book)
	}
}

func TestReadMarketLinesErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"Missing book column", "player,stat,line,over_odds\nCurry,points,26.5,-110\n"},
		{"Bad line", "player,stat,line,over_odds,book\nCurry,points,abc,-110,draftkings\n"},
		{"Bad odds", "player,stat,line,over_odds,book\nCurry,points,26.5,heavy,draftkings\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadMarketLines(strings.NewReader(tt.csv)); err == nil {
				t.Error("ReadMarketLines accepted malformed snapshot")
			}
		})
	}
}

func TestWriteRecommendations(t *testing.T) {
	recs := []analysis.Recommendation{
		{
			Player: "Stephen Curry", Stat: analysis.StatPoints, Direction: analysis.Over,
			Line: 24.5, Odds: 1140, Probability: 0.5398, EV: 5.694, FairValue: -117,
			Units: 0.1249, Book: analysis.BookDraftKings, IsLongshot: true,
		},
	}

	var sb strings.Builder
	if err := WriteRecommendations(&sb, recs); err != nil {
		t.Fatalf("WriteRecommendations: %v", err)
	}

	out := sb.String()
	wantHeader := "player,stat,direction,line,odds,probability,ev,fv_odds,units,book,is_mainline,is_longshot"
	if !strings.HasPrefix(out, wantHeader+"\n") {
		t.Errorf("header = %q, want %q", strings.SplitN(out, "\n", 2)[0], wantHeader)
	}
	wantRow := "Stephen Curry,points,over,24.5,1140,0.5398,5.6940,-117,0.1249,draftkings,false,true"
	if !strings.Contains(out, wantRow) {
		t.Errorf("output %q missing row %q", out, wantRow)
	}
}

func TestRoundTripThroughSnapshotFiles(t *testing.T) {
	dir := t.TempDir()

	predPath := dir + "/predictions.csv"
	oddsPath := dir + "/odds.csv"
	writeFile(t, predPath, "player,stat,predicted_value,std_dev\nStephen Curry,points,25.0,5.0\n")
	writeFile(t, oddsPath, "player,stat,line,over_odds,under_odds,book\nStephen Curry,points,24.5,+1140,-130,draftkings\n")

	preds, err := LoadPredictions(predPath)
	if err != nil {
		t.Fatalf("LoadPredictions: %v", err)
	}
	lines, err := LoadMarketLines(oddsPath)
	if err != nil {
		t.Fatalf("LoadMarketLines: %v", err)
	}
	if len(preds) != 1 || len(lines) != 2 {
		t.Fatalf("got %d predictions and %d lines, want 1 and 2", len(preds), len(lines))
	}
}
