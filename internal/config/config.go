package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"nba-prop-bets/internal/analysis"
)

// Defaults for configuration values.
const (
	DefaultMainlineThreshold = 200
	DefaultLongshotThreshold = 500
	DefaultMinEV             = 0.0
	DefaultKellyFraction     = 0.25
	DefaultPredictionsPath   = "predictions.csv"
	DefaultOddsPath          = "odds.csv"
	DefaultAlertCooldown     = 5 * time.Minute
	DefaultAlertEVThreshold  = 0.05
)

// Config holds all application configuration.
type Config struct {
	// Engine settings
	MainlineThreshold int
	LongshotThreshold int
	MinEV             float64
	IncludeNegativeEV bool
	KellyFraction     float64
	StdDevFractions   map[analysis.Stat]float64
	StatFilter        analysis.Stat // empty = all stats

	// Snapshot paths
	PredictionsPath string
	OddsPath        string
	OutputPath      string // empty = no CSV export
	DBPath          string // empty = no persistence

	// Watch mode
	WatchInterval    time.Duration // 0 = single run
	AlertCooldown    time.Duration
	AlertEVThreshold float64
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		MainlineThreshold: DefaultMainlineThreshold,
		LongshotThreshold: DefaultLongshotThreshold,
		MinEV:             DefaultMinEV,
		KellyFraction:     DefaultKellyFraction,
		StdDevFractions:   analysis.DefaultStdDevFractions(),
		PredictionsPath:   DefaultPredictionsPath,
		OddsPath:          DefaultOddsPath,
		OutputPath:        os.Getenv("OUTPUT_PATH"),
		DBPath:            os.Getenv("DB_PATH"),
		AlertCooldown:     DefaultAlertCooldown,
		AlertEVThreshold:  DefaultAlertEVThreshold,
	}

	if v := os.Getenv("MAINLINE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MainlineThreshold = n
		}
	}

	if v := os.Getenv("LONGSHOT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LongshotThreshold = n
		}
	}

	if v := os.Getenv("MIN_EV"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinEV = f
		}
	}

	if os.Getenv("INCLUDE_NEGATIVE_EV") == "true" {
		cfg.IncludeNegativeEV = true
	}

	if v := os.Getenv("KELLY_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.KellyFraction = f
		}
	}

	if v := os.Getenv("STD_DEV_FRACTIONS"); v != "" {
		applyStdDevOverrides(cfg.StdDevFractions, v)
	}

	if v := os.Getenv("STAT_FILTER"); v != "" {
		cfg.StatFilter = analysis.Stat(strings.ToLower(v))
	}

	if v := os.Getenv("PREDICTIONS_PATH"); v != "" {
		cfg.PredictionsPath = v
	}

	if v := os.Getenv("ODDS_PATH"); v != "" {
		cfg.OddsPath = v
	}

	if v := os.Getenv("WATCH_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.WatchInterval = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("ALERT_COOLDOWN_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.AlertCooldown = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("ALERT_EV_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AlertEVThreshold = f
		}
	}

	return cfg
}

// applyStdDevOverrides merges a "stat=fraction,stat=fraction" list over the
// defaults, e.g. "points=0.18,threes=0.40".
func applyStdDevOverrides(fractions map[analysis.Stat]float64, raw string) {
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}
		f, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || f <= 0 {
			continue
		}
		fractions[analysis.Stat(strings.ToLower(parts[0]))] = f
	}
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.MainlineThreshold >= cfg.LongshotThreshold {
		return fmt.Errorf("MAINLINE_THRESHOLD (%d) must be below LONGSHOT_THRESHOLD (%d)",
			cfg.MainlineThreshold, cfg.LongshotThreshold)
	}
	if cfg.KellyFraction <= 0 || cfg.KellyFraction > 1 {
		return fmt.Errorf("KELLY_FRACTION must be in (0, 1], got %f", cfg.KellyFraction)
	}
	for stat, f := range cfg.StdDevFractions {
		if f <= 0 {
			return fmt.Errorf("std dev fraction for %s must be positive, got %f", stat, f)
		}
	}
	if cfg.PredictionsPath == "" {
		return fmt.Errorf("PREDICTIONS_PATH must not be empty")
	}
	if cfg.OddsPath == "" {
		return fmt.Errorf("ODDS_PATH must not be empty")
	}
	if cfg.WatchInterval != 0 && cfg.WatchInterval < 100*time.Millisecond {
		return fmt.Errorf("WATCH_INTERVAL_MS must be at least 100ms, got %v", cfg.WatchInterval)
	}
	if cfg.AlertCooldown < 0 {
		return fmt.Errorf("ALERT_COOLDOWN_MS must be non-negative, got %v", cfg.AlertCooldown)
	}
	return nil
}

// EngineConfig maps application configuration onto generator settings.
func EngineConfig(cfg Config) analysis.Config {
	return analysis.Config{
		MainlineThreshold: cfg.MainlineThreshold,
		LongshotThreshold: cfg.LongshotThreshold,
		MinEV:             cfg.MinEV,
		IncludeNegativeEV: cfg.IncludeNegativeEV,
		KellyFraction:     cfg.KellyFraction,
		StdDevFractions:   cfg.StdDevFractions,
	}
}
