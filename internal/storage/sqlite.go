// Package storage provides SQLite-based persistence for level run records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded level attempt.
type RunEntry struct {
	ID           int64
	LevelID      string
	Completed    bool
	Deaths       int
	DurationSecs int
	CreatedAt    time.Time
}

// LevelStats aggregates every recorded attempt for one level.
type LevelStats struct {
	LevelID     string
	Attempts    int
	Completions int
	TotalDeaths int
	BestSecs    int // fastest completed run, 0 when never completed
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
	if err := os.MkdirAll(dir, 0o755); err != nil {
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
			level_id TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, completed, duration_secs);
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

// SaveRun records a finished level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(levelID string, completed bool, deaths, durationSecs int) (int64, error) {
	completedInt := 0
	if completed {
		completedInt = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (level_id, completed, deaths, duration_secs) VALUES (?, ?, ?, ?)",
		levelID, completedInt, deaths, durationSecs,
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

// RecentRuns retrieves the latest N runs for the given level.
func (s *Store) RecentRuns(levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, completed, deaths, duration_secs, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// Stats aggregates all attempts for the given level.
func (s *Store) Stats(levelID string) (LevelStats, error) {
	st := LevelStats{LevelID: levelID}
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(SUM(deaths), 0),
		        MIN(CASE WHEN completed = 1 THEN duration_secs END)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&st.Attempts, &st.Completions, &st.TotalDeaths, &best)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if best.Valid {
		st.BestSecs = int(best.Int64)
	}
	return st, nil
}

// AllStats aggregates attempts per level, for every level with at least one
// recorded run, ordered by level ID.
func (s *Store) AllStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COALESCE(SUM(completed), 0), COALESCE(SUM(deaths), 0),
		        MIN(CASE WHEN completed = 1 THEN duration_secs END)
		 FROM runs
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var all []LevelStats
	for rows.Next() {
		var st LevelStats
		var best sql.NullInt64
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Completions, &st.TotalDeaths, &best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if best.Valid {
			st.BestSecs = int(best.Int64)
		}
		all = append(all, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var completed int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &completed, &e.Deaths, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
