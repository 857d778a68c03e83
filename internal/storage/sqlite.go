// Package storage provides SQLite-based persistence for the run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned when a run ID is not in the journal.
var ErrRunNotFound = errors.New("storage: run not found")

// Journal statuses that are not game statuses.
const (
	StatusInProgress = "in_progress"
	StatusAbandoned  = "abandoned"
)

// Input kinds recorded in run_inputs.
const (
	InputCommand = "command"
	InputResize  = "resize"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one journaled game generation.
type Run struct {
	ID         string
	Player     string
	Rows       int
	Width      int
	Height     int
	Status     string
	Score      int
	Ticks      int
	StartedAt  time.Time
	FinishedAt time.Time // Zero while the run is open
}

// Finished reports whether the run has been closed.
func (r Run) Finished() bool {
	return r.Status != StatusInProgress
}

// RunInput is one recorded input of a run, in arrival order.
type RunInput struct {
	Seq     int
	Tick    int
	Kind    string // InputCommand or InputResize
	Command string // Command name for InputCommand
	Width   int    // Play area for InputResize
	Height  int
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
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			rows_count INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			status TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);

		CREATE TABLE IF NOT EXISTS run_inputs (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			command TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, seq)
		);
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

// BeginRun opens a new run in the journal and returns its ID.
func (s *Store) BeginRun(player string, rows, width, height int) (string, error) {
	id := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, rows_count, width, height, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, player, rows, width, height, StatusInProgress,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin run: %w", err)
	}

	return id, nil
}

// AppendInput records an input for an open run. Sequence numbers are
// assigned in insertion order starting at 1.
func (s *Store) AppendInput(runID string, in RunInput) error {
	_, err := s.db.Exec(
		`INSERT INTO run_inputs (run_id, seq, tick, kind, command, width, height)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM run_inputs WHERE run_id = ?), ?, ?, ?, ?, ?)`,
		runID, runID, in.Tick, in.Kind, in.Command, in.Width, in.Height,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append input to run %s: %w", runID, err)
	}
	return nil
}

// FinishRun closes a run with its final status, score and tick count.
func (s *Store) FinishRun(runID, status string, score, ticks int) error {
	res, err := s.db.Exec(
		`UPDATE runs
		 SET status = ?, score = ?, ticks = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, score, ticks, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run %s: %w", runID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish run %s: %w", runID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `id, player, rows_count, width, height, status, score, ticks, started_at, finished_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var startedAt, finishedAt any
	err := row.Scan(
		&r.ID,
		&r.Player,
		&r.Rows,
		&r.Width,
		&r.Height,
		&r.Status,
		&r.Score,
		&r.Ticks,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		return Run{}, err
	}
	r.StartedAt = parseTime(startedAt)
	r.FinishedAt = parseTime(finishedAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes; NULL yields zero.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Run retrieves a run by ID.
func (s *Store) Run(runID string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, runID)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run %s: %w", runID, err)
	}
	return r, nil
}

// RunInputs retrieves the recorded inputs of a run in sequence order.
func (s *Store) RunInputs(runID string) ([]RunInput, error) {
	rows, err := s.db.Query(
		`SELECT seq, tick, kind, command, width, height
		 FROM run_inputs
		 WHERE run_id = ?
		 ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var inputs []RunInput
	for rows.Next() {
		var in RunInput
		if err := rows.Scan(&in.Seq, &in.Tick, &in.Kind, &in.Command, &in.Width, &in.Height); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		inputs = append(inputs, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return inputs, nil
}

// RecentRuns retrieves the most recently started runs, newest first.
// An empty player matches every player.
func (s *Store) RecentRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its inputs.
func (s *Store) DeleteRun(runID string) error {
	if _, err := s.db.Exec("DELETE FROM run_inputs WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("storage: cannot delete inputs of run %s: %w", runID, err)
	}
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", runID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run %s: %w", runID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}
