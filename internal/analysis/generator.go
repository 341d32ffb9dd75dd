package analysis

import (
	"errors"
	"fmt"
	"sort"

	"nba-prop-bets/internal/odds"
)

// ErrInvalidConfig is returned by NewGenerator for inconsistent settings.
// It is the only error that prevents the engine from running at all.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config holds bet generation settings.
type Config struct {
	MainlineThreshold int     // mainline tier: odds <= this (default +200)
	LongshotThreshold int     // longshot tier: odds >= this (default +500)
	MinEV             float64 // drop recommendations below this EV
	IncludeNegativeEV bool    // keep everything regardless of EV sign
	KellyFraction     float64 // fraction of full Kelly (0.25 = quarter Kelly)
	StdDevFractions   map[Stat]float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MainlineThreshold: 200,
		LongshotThreshold: 500,
		MinEV:             0.0,
		KellyFraction:     0.25,
		StdDevFractions:   DefaultStdDevFractions(),
	}
}

// Generator turns prediction and market snapshots into ranked, sized
// recommendations. It holds no mutable state: concurrent Generate calls
// with independent snapshots are safe.
type Generator struct {
	cfg     Config
	matcher PlayerMatcher
}

// NewGenerator validates the configuration and builds a Generator.
// A nil matcher falls back to NormalizedMatcher.
func NewGenerator(cfg Config, matcher PlayerMatcher) (*Generator, error) {
	if cfg.MainlineThreshold >= cfg.LongshotThreshold {
		return nil, fmt.Errorf("%w: mainline threshold %d must be below longshot threshold %d",
			ErrInvalidConfig, cfg.MainlineThreshold, cfg.LongshotThreshold)
	}
	if cfg.KellyFraction <= 0 || cfg.KellyFraction > 1 {
		return nil, fmt.Errorf("%w: kelly fraction must be in (0, 1], got %v",
			ErrInvalidConfig, cfg.KellyFraction)
	}
	if cfg.StdDevFractions == nil {
		cfg.StdDevFractions = DefaultStdDevFractions()
	}
	if matcher == nil {
		matcher = NormalizedMatcher{}
	}
	return &Generator{cfg: cfg, matcher: matcher}, nil
}

// candidate is a quote priced against the model, before book selection.
type candidate struct {
	quote  MarketLine
	prob   float64
	payout float64
	ev     float64
}

// Generate runs one matching pass over immutable snapshots of predictions
// and market lines. Per-record conversion failures are reported in the
// diagnostics slice instead of aborting the batch; predictions with no
// matching quote are skipped silently. Output order is deterministic given
// identical inputs.
func (g *Generator) Generate(preds []Prediction, lines []MarketLine) ([]Recommendation, []Diagnostic) {
	var recs []Recommendation
	var diags []Diagnostic

	for _, pred := range preds {
		stdDev := pred.StdDev
		if stdDev == 0 {
			stdDev = DeriveStdDev(pred.Stat, pred.Value, g.cfg.StdDevFractions)
		}
		if stdDev < 0 {
			diags = append(diags, Diagnostic{
				Player: pred.Player,
				Stat:   pred.Stat,
				Err:    fmt.Errorf("%w: std dev %v", ErrInvalidModelInput, pred.StdDev),
			})
			continue
		}

		byDir := make(map[Direction][]MarketLine)
		for _, ml := range lines {
			if ml.Stat != pred.Stat || !g.matcher.Match(pred.Player, ml.Player) {
				continue
			}
			byDir[ml.Direction] = append(byDir[ml.Direction], ml)
		}

		for _, dir := range []Direction{Over, Under} {
			best, candDiags := g.selectBest(pred, stdDev, byDir[dir], dir)
			diags = append(diags, candDiags...)
			if best == nil {
				continue
			}

			rec, err := g.recommend(*best, lines)
			if err != nil {
				diags = append(diags, Diagnostic{
					Player:    pred.Player,
					Stat:      pred.Stat,
					Direction: dir,
					Book:      best.quote.Book,
					Err:       err,
				})
				continue
			}

			if !g.cfg.IncludeNegativeEV && rec.EV < g.cfg.MinEV {
				continue
			}
			recs = append(recs, rec)
		}
	}

	sortRecommendations(recs)
	return recs, diags
}

// selectBest picks the best-paying quote for one (player, stat, direction).
// Books may hang different thresholds, so each quote is priced against its
// own line before comparison. At most one candidate survives.
func (g *Generator) selectBest(pred Prediction, stdDev float64, quotes []MarketLine, dir Direction) (*candidate, []Diagnostic) {
	var best *candidate
	var diags []Diagnostic

	for _, q := range quotes {
		payout, err := odds.DecimalPayout(q.Odds)
		if err != nil {
			diags = append(diags, Diagnostic{q.Player, q.Stat, q.Direction, q.Book, err})
			continue
		}

		prob, err := CoverProbability(pred.Value, stdDev, q.Line, dir)
		if err != nil {
			diags = append(diags, Diagnostic{q.Player, q.Stat, q.Direction, q.Book, err})
			continue
		}

		ev, err := EV(prob, q.Odds)
		if err != nil {
			diags = append(diags, Diagnostic{q.Player, q.Stat, q.Direction, q.Book, err})
			continue
		}

		c := candidate{quote: q, prob: prob, payout: payout, ev: ev}
		if best == nil || betterQuote(c, *best) {
			cc := c
			best = &cc
		}
	}

	return best, diags
}

// betterQuote orders candidates by payout multiplier; ties resolve by book
// name then threshold so selection is reproducible.
func betterQuote(a, b candidate) bool {
	if a.payout != b.payout {
		return a.payout > b.payout
	}
	if a.quote.Book != b.quote.Book {
		return a.quote.Book < b.quote.Book
	}
	return a.quote.Line < b.quote.Line
}

// recommend fills in fair value, sizing, the vig-free market probability and
// risk tier for the selected candidate.
func (g *Generator) recommend(c candidate, lines []MarketLine) (Recommendation, error) {
	fv, err := odds.ImpliedToAmerican(c.prob)
	if err != nil {
		return Recommendation{}, err
	}

	units, err := Units(c.prob, c.quote.Odds, g.cfg.KellyFraction)
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		Player:      c.quote.Player,
		Stat:        c.quote.Stat,
		Direction:   c.quote.Direction,
		Line:        c.quote.Line,
		Odds:        c.quote.Odds,
		Probability: c.prob,
		EV:          c.ev,
		FairValue:   fv,
		Units:       units,
		Book:        c.quote.Book,
		MarketProb:  marketProbability(c.quote, lines),
		IsMainline:  c.quote.Odds <= g.cfg.MainlineThreshold,
		IsLongshot:  c.quote.Odds >= g.cfg.LongshotThreshold,
	}, nil
}

// marketProbability devigs the chosen book's two-way quote at the chosen
// threshold. Returns 0 when the book only hangs one side.
func marketProbability(chosen MarketLine, lines []MarketLine) float64 {
	opp := chosen.Direction.Opposite()
	for _, ml := range lines {
		if ml.Book == chosen.Book && ml.Stat == chosen.Stat && ml.Player == chosen.Player &&
			ml.Direction == opp && ml.Line == chosen.Line {
			p, _ := odds.RemoveVigFromAmerican(chosen.Odds, ml.Odds)
			return p
		}
	}
	return 0
}

// sortRecommendations orders by descending EV, then descending |odds|, then
// player/stat/direction/book so identical inputs always produce identical
// output order.
func sortRecommendations(recs []Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.EV != b.EV {
			return a.EV > b.EV
		}
		if absInt(a.Odds) != absInt(b.Odds) {
			return absInt(a.Odds) > absInt(b.Odds)
		}
		if a.Player != b.Player {
			return a.Player < b.Player
		}
		if a.Stat != b.Stat {
			return a.Stat < b.Stat
		}
		if a.Direction != b.Direction {
			return a.Direction < b.Direction
		}
		return a.Book < b.Book
	})
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
