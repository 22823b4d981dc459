// Package history persists per-run violation totals to a SQLite database
// so corpus quality can be tracked across invocations. Recording is opt-in;
// rendered reports never depend on this store.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/skilllint/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded scan summary.
type Run struct {
	ID                  string
	Root                string
	TotalFiles          int
	FilesWithViolations int
	Errors              int
	Warnings            int
	Infos               int
	PairedExampleRatio  float64
	AntiPatternRatio    float64
	CreatedAt           time.Time
}

// Total returns the run's violation total across severities.
func (r Run) Total() int {
	return r.Errors + r.Warnings + r.Infos
}

// Store manages the SQLite run-history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath.
// ":memory:" is supported for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so later statements wait on locks instead of
	// failing when CI jobs share the database.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores the totals of a finished scan and returns the run id.
func (s *Store) RecordRun(root string, corpus *models.CorpusReport) (string, error) {
	id := uuid.New().String()

	_, err := s.db.Exec(`
		INSERT INTO runs (id, root, total_files, files_with_violations,
			errors, warnings, infos, paired_example_ratio, anti_pattern_ratio, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, root, corpus.TotalFiles, corpus.FilesWithViolations,
		corpus.Totals.Errors, corpus.Totals.Warnings, corpus.Totals.Infos,
		corpus.PairedExampleRatio, corpus.AntiPatternRatio, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, root, total_files, files_with_violations,
			errors, warnings, infos, paired_example_ratio, anti_pattern_ratio, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Root, &r.TotalFiles, &r.FilesWithViolations,
			&r.Errors, &r.Warnings, &r.Infos, &r.PairedExampleRatio, &r.AntiPatternRatio, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Delta compares the two most recent runs and returns the change in total
// violations (negative means improvement). ok is false with fewer than two
// recorded runs.
func (s *Store) Delta() (delta int, ok bool, err error) {
	runs, err := s.RecentRuns(2)
	if err != nil {
		return 0, false, err
	}
	if len(runs) < 2 {
		return 0, false, nil
	}
	return runs[0].Total() - runs[1].Total(), true, nil
}
