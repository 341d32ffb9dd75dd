// Package feed loads the engine's two input snapshots from delimited files
// and writes the output table. Fetching live predictions and odds is the
// job of upstream collaborators; the engine only ever sees these snapshots.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"nba-prop-bets/internal/analysis"
)

// LoadPredictions reads a prediction snapshot. Expected header:
//
//	player,stat,predicted_value,std_dev
//
// std_dev may be empty; the engine derives a per-stat default.
func LoadPredictions(path string) ([]analysis.Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening predictions snapshot: %w", err)
	}
	defer f.Close()
	return ReadPredictions(f)
}

// ReadPredictions parses a prediction snapshot from a reader.
func ReadPredictions(r io.Reader) ([]analysis.Prediction, error) {
	rows, cols, err := readTable(r, []string{"player", "stat", "predicted_value"})
	if err != nil {
		return nil, fmt.Errorf("predictions: %w", err)
	}

	var preds []analysis.Prediction
	for i, row := range rows {
		value, err := strconv.ParseFloat(row[cols["predicted_value"]], 64)
		if err != nil {
			return nil, fmt.Errorf("predictions row %d: bad predicted_value %q", i+2, row[cols["predicted_value"]])
		}

		pred := analysis.Prediction{
			Player: strings.TrimSpace(row[cols["player"]]),
			Stat:   analysis.Stat(strings.ToLower(strings.TrimSpace(row[cols["stat"]]))),
			Value:  value,
		}

		if idx, ok := cols["std_dev"]; ok && strings.TrimSpace(row[idx]) != "" {
			sd, err := strconv.ParseFloat(row[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("predictions row %d: bad std_dev %q", i+2, row[idx])
			}
			pred.StdDev = sd
		}

		preds = append(preds, pred)
	}
	return preds, nil
}

// LoadMarketLines reads an odds snapshot. Expected header:
//
//	player,stat,line,over_odds,under_odds,book
//
// Each row fans out into up to two MarketLines, one per quoted side.
func LoadMarketLines(path string) ([]analysis.MarketLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening odds snapshot: %w", err)
	}
	defer f.Close()
	return ReadMarketLines(f)
}

// ReadMarketLines parses an odds snapshot from a reader.
func ReadMarketLines(r io.Reader) ([]analysis.MarketLine, error) {
	rows, cols, err := readTable(r, []string{"player", "stat", "line", "book"})
	if err != nil {
		return nil, fmt.Errorf("odds: %w", err)
	}

	var lines []analysis.MarketLine
	for i, row := range rows {
		threshold, err := strconv.ParseFloat(row[cols["line"]], 64)
		if err != nil {
			return nil, fmt.Errorf("odds row %d: bad line %q", i+2, row[cols["line"]])
		}

		base := analysis.MarketLine{
			Player: strings.TrimSpace(row[cols["player"]]),
			Stat:   analysis.Stat(strings.ToLower(strings.TrimSpace(row[cols["stat"]]))),
			Line:   threshold,
			Book:   analysis.Book(strings.ToLower(strings.TrimSpace(row[cols["book"]]))),
		}

		for _, side := range []struct {
			col string
			dir analysis.Direction
		}{
			{"over_odds", analysis.Over},
			{"under_odds", analysis.Under},
		} {
			idx, ok := cols[side.col]
			if !ok || strings.TrimSpace(row[idx]) == "" {
				continue
			}
			american, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(row[idx]), "+"))
			if err != nil {
				return nil, fmt.Errorf("odds row %d: bad %s %q", i+2, side.col, row[idx])
			}
			ml := base
			ml.Direction = side.dir
			ml.Odds = american
			lines = append(lines, ml)
		}
	}
	return lines, nil
}

// outputHeader is the delimited output schema.
var outputHeader = []string{
	"player", "stat", "direction", "line", "odds",
	"probability", "ev", "fv_odds", "units", "book",
	"is_mainline", "is_longshot",
}

// WriteRecommendations writes the output table for a generation run.
func WriteRecommendations(w io.Writer, recs []analysis.Recommendation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("writing output header: %w", err)
	}

	for _, rec := range recs {
		row := []string{
			rec.Player,
			string(rec.Stat),
			string(rec.Direction),
			strconv.FormatFloat(rec.Line, 'f', -1, 64),
			strconv.Itoa(rec.Odds),
			strconv.FormatFloat(rec.Probability, 'f', 4, 64),
			strconv.FormatFloat(rec.EV, 'f', 4, 64),
			strconv.Itoa(rec.FairValue),
			strconv.FormatFloat(rec.Units, 'f', 4, 64),
			string(rec.Book),
			strconv.FormatBool(rec.IsMainline),
			strconv.FormatBool(rec.IsLongshot),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing output row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveRecommendations writes the output table to a file.
func SaveRecommendations(path string, recs []analysis.Recommendation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteRecommendations(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readTable reads a CSV with a header row and checks required columns.
// Returns the data rows and a name → index map for the header.
func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty snapshot")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}

	return records[1:], cols, nil
}
