package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"nba-prop-bets/internal/analysis"
)

// Run is one recorded generation pass.
type Run struct {
	ID              string
	CreatedAt       time.Time
	PredictionCount int
	LineCount       int
	RecCount        int
}

// DB persists generation runs and their recommendations. The engine itself
// never touches storage; the caller decides whether a run is worth keeping.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the recommendation database.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		prediction_count INTEGER NOT NULL,
		line_count INTEGER NOT NULL,
		rec_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recommendations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		player TEXT NOT NULL,
		stat TEXT NOT NULL,
		direction TEXT NOT NULL,
		line REAL NOT NULL,
		odds INTEGER NOT NULL,
		probability REAL NOT NULL,
		ev REAL NOT NULL,
		fv_odds INTEGER NOT NULL,
		units REAL NOT NULL,
		book TEXT NOT NULL,
		is_mainline INTEGER NOT NULL,
		is_longshot INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_recs_run ON recommendations(run_id);
	CREATE INDEX IF NOT EXISTS idx_recs_player ON recommendations(player, stat);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveRun stores one generation pass and returns its run id.
func (d *DB) SaveRun(recs []analysis.Recommendation, predictionCount, lineCount int) (string, error) {
	runID := uuid.NewString()

	tx, err := d.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, prediction_count, line_count, rec_count)
		VALUES (?, ?, ?, ?)
	`, runID, predictionCount, lineCount, len(recs))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO recommendations
			(run_id, player, stat, direction, line, odds, probability, ev, fv_odds, units, book, is_mainline, is_longshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		_, err := stmt.Exec(
			runID, rec.Player, string(rec.Stat), string(rec.Direction),
			rec.Line, rec.Odds, rec.Probability, rec.EV, rec.FairValue,
			rec.Units, string(rec.Book), rec.IsMainline, rec.IsLongshot,
		)
		if err != nil {
			return "", fmt.Errorf("inserting recommendation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RecentRuns returns the most recent runs, newest first.
func (d *DB) RecentRuns(limit int) ([]Run, error) {
	rows, err := d.db.Query(`
		SELECT id, created_at, prediction_count, line_count, rec_count
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.PredictionCount, &r.LineCount, &r.RecCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunRecommendations returns the stored recommendations for a run, in the
// order they were generated.
func (d *DB) RunRecommendations(runID string) ([]analysis.Recommendation, error) {
	rows, err := d.db.Query(`
		SELECT player, stat, direction, line, odds, probability, ev, fv_odds, units, book, is_mainline, is_longshot
		FROM recommendations WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying recommendations: %w", err)
	}
	defer rows.Close()

	var recs []analysis.Recommendation
	for rows.Next() {
		var rec analysis.Recommendation
		var stat, dir, book string
		if err := rows.Scan(
			&rec.Player, &stat, &dir, &rec.Line, &rec.Odds,
			&rec.Probability, &rec.EV, &rec.FairValue, &rec.Units,
			&book, &rec.IsMainline, &rec.IsLongshot,
		); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		rec.Stat = analysis.Stat(stat)
		rec.Direction = analysis.Direction(dir)
		rec.Book = analysis.Book(book)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
