// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only run outcomes are stored. Progress is never saved: a new session
// always starts from the first level.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run outcomes.
const (
	OutcomeFinished = "finished" // Every level cleared
	OutcomeGameOver = "gameover" // Lives ran out
	OutcomeQuit     = "quit"     // Player left mid-run
)

// RunRecord represents one finished play session.
type RunRecord struct {
	ID            int64
	Outcome       string
	LevelsCleared int
	LevelCount    int
	Deaths        int
	Restarts      int
	Ticks         uint64
	DurationMS    int64 // simulated time
	Seed          int64
	Difficulty    string
	CreatedAt     time.Time
}

// RunTotals contains aggregated statistics over all recorded runs.
type RunTotals struct {
	Runs        int
	Finished    int
	TotalDeaths int
	BestLevels  int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			levels_cleared INTEGER NOT NULL DEFAULT 0,
			level_count INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			restarts INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(levels_cleared DESC, deaths ASC, ticks ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	switch r.Outcome {
	case OutcomeFinished, OutcomeGameOver, OutcomeQuit:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (outcome, levels_cleared, level_count, deaths, restarts, ticks, duration_ms, seed, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Outcome, r.LevelsCleared, r.LevelCount, r.Deaths, r.Restarts,
		int64(r.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		r.DurationMS, r.Seed, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, outcome, levels_cleared, level_count, deaths, restarts, ticks, duration_ms, seed, difficulty, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the run that cleared the most levels, preferring fewer
// deaths and then fewer ticks. Returns nil if no runs exist.
func (s *Store) BestRun() (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT ` + runColumns + `
		 FROM runs
		 ORDER BY levels_cleared DESC, deaths ASC, ticks ASC, id ASC
		 LIMIT 1`,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Totals retrieves aggregated statistics over all runs.
func (s *Store) Totals() (RunTotals, error) {
	var t RunTotals
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(deaths), 0),
		        COALESCE(MAX(levels_cleared), 0),
		        MAX(created_at)
		 FROM runs`,
		OutcomeFinished,
	).Scan(&t.Runs, &t.Finished, &t.TotalDeaths, &t.BestLevels, &lastPlayed)
	if err != nil {
		return RunTotals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Outcome,
		&r.LevelsCleared,
		&r.LevelCount,
		&r.Deaths,
		&r.Restarts,
		&ticks,
		&r.DurationMS,
		&r.Seed,
		&r.Difficulty,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
