package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"nba-prop-bets/internal/alerts"
	"nba-prop-bets/internal/analysis"
	"nba-prop-bets/internal/config"
	"nba-prop-bets/internal/engine"
	"nba-prop-bets/internal/store"
)

// Usage:
//
//	bets [stat] [min_ev]
//
// Both arguments are optional; they narrow the run to one stat type and
// override MIN_EV for this invocation. Everything else comes from the
// environment (see internal/config).
func main() {
	cfg := config.Load()
	applyArgs(&cfg, os.Args[1:])

	if err := config.Validate(cfg); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gen, err := analysis.NewGenerator(config.EngineConfig(cfg), nil)
	if err != nil {
		slog.Error("building generator", "error", err)
		os.Exit(1)
	}

	var db *store.DB
	if cfg.DBPath != "" {
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			slog.Error("opening recommendation store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	notifier := alerts.NewNotifier(cfg.AlertCooldown)
	runner := engine.New(gen, notifier, db, cfg)

	if cfg.WatchInterval > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		runner.Run(ctx)
		return
	}

	recs, _, err := runner.RunOnce()
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	analysis.WriteReport(os.Stdout, recs)
}

// applyArgs handles the optional positional overrides: a stat filter and a
// minimum EV for this invocation.
func applyArgs(cfg *config.Config, args []string) {
	if len(args) >= 1 && args[0] != "" {
		cfg.StatFilter = analysis.Stat(args[0])
	}
	if len(args) >= 2 {
		if f, err := strconv.ParseFloat(args[1], 64); err == nil {
			cfg.MinEV = f
		} else {
			fmt.Fprintf(os.Stderr, "ignoring bad min_ev argument %q\n", args[1])
		}
	}
}
