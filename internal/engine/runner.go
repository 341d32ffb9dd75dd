// Package engine wires the pure bet generator to its collaborators: the
// snapshot feeds, the optional recommendation store, and alerting. The
// generator itself never performs I/O; everything in here is caller-side.
package engine

import (
	"context"
	"log/slog"
	"time"

	"nba-prop-bets/internal/alerts"
	"nba-prop-bets/internal/analysis"
	"nba-prop-bets/internal/config"
	"nba-prop-bets/internal/feed"
	"nba-prop-bets/internal/store"
)

// cleanupInterval bounds the notifier's dedupe map in long watch sessions.
const cleanupInterval = 10 * time.Minute

// Runner executes generation passes over the configured snapshots.
type Runner struct {
	gen      *analysis.Generator
	notifier *alerts.Notifier
	db       *store.DB // nil = no persistence
	cfg      config.Config
}

// New creates a Runner. db may be nil.
func New(gen *analysis.Generator, notifier *alerts.Notifier, db *store.DB, cfg config.Config) *Runner {
	return &Runner{gen: gen, notifier: notifier, db: db, cfg: cfg}
}

// RunOnce loads both snapshots, generates recommendations, and applies the
// configured side effects: CSV export and persistence. Diagnostics are
// logged and returned; they never abort the pass.
func (r *Runner) RunOnce() ([]analysis.Recommendation, []analysis.Diagnostic, error) {
	preds, err := feed.LoadPredictions(r.cfg.PredictionsPath)
	if err != nil {
		return nil, nil, err
	}

	lines, err := feed.LoadMarketLines(r.cfg.OddsPath)
	if err != nil {
		return nil, nil, err
	}

	if r.cfg.StatFilter != "" {
		preds = filterByStat(preds, r.cfg.StatFilter)
	}

	recs, diags := r.gen.Generate(preds, lines)
	for _, d := range diags {
		slog.Warn("record excluded", "record", d.String())
	}
	slog.Info("generation pass complete",
		"predictions", len(preds), "lines", len(lines),
		"recommendations", len(recs), "excluded", len(diags))

	if r.cfg.OutputPath != "" {
		if err := feed.SaveRecommendations(r.cfg.OutputPath, recs); err != nil {
			return nil, nil, err
		}
		slog.Info("wrote output table", "path", r.cfg.OutputPath)
	}

	if r.db != nil {
		runID, err := r.db.SaveRun(recs, len(preds), len(lines))
		if err != nil {
			return nil, nil, err
		}
		slog.Info("persisted run", "run_id", runID)
	}

	return recs, diags, nil
}

func filterByStat(preds []analysis.Prediction, stat analysis.Stat) []analysis.Prediction {
	var kept []analysis.Prediction
	for _, p := range preds {
		if p.Stat == stat {
			kept = append(kept, p)
		}
	}
	return kept
}

// Run re-generates on every tick until ctx is cancelled, alerting on
// recommendations that clear the alert threshold. Snapshot files are
// re-read each pass so an external fetcher can refresh them in place.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.WatchInterval)
	defer ticker.Stop()

	cleanupTicker := time.NewTicker(cleanupInterval)
	defer cleanupTicker.Stop()

	slog.Info("starting watch loop", "interval", r.cfg.WatchInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch loop stopped")
			return

		case <-cleanupTicker.C:
			r.notifier.CleanupOldAlerts()

		case <-ticker.C:
			recs, _, err := r.RunOnce()
			if err != nil {
				r.notifier.LogError("generation pass", err)
				continue
			}
			for _, rec := range recs {
				if rec.EV >= r.cfg.AlertEVThreshold {
					r.notifier.AlertValue(rec)
				}
			}
		}
	}
}
