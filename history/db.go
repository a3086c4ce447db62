package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB wraps the scandash run-log SQLite database.
type DB struct {
	db *sql.DB
}

// Run is one completed analysis recorded for the history panel.
type Run struct {
	ID             string
	Project        string
	ArchivePath    string
	TotalIssues    int
	CriticalIssues int
	Warnings       int
	Suggestions    int
	Health         string
	ReportPath     string
	CreatedAt      time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	project         TEXT NOT NULL,
	archive_path    TEXT NOT NULL DEFAULT '',
	total_issues    INTEGER NOT NULL,
	critical_issues INTEGER NOT NULL,
	warnings        INTEGER NOT NULL,
	suggestions     INTEGER NOT NULL,
	health          TEXT NOT NULL,
	report_path     TEXT NOT NULL DEFAULT '',
	created_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// DefaultPath returns the run-log location under the XDG data directory.
func DefaultPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "history.db"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "scandash", "history.db")
}

// Open opens (creating as needed) the run-log database.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &DB{db: sqlDB}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Record inserts a completed run. A missing ID or timestamp is filled in.
func (d *DB) Record(run Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := d.db.Exec(`INSERT INTO runs
		(id, project, archive_path, total_issues, critical_issues, warnings, suggestions, health, report_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Project, run.ArchivePath,
		run.TotalIssues, run.CriticalIssues, run.Warnings, run.Suggestions,
		run.Health, run.ReportPath, run.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (d *DB) Recent(limit int) ([]Run, error) {
	rows, err := d.db.Query(`SELECT id, project,
		COALESCE(archive_path, ''),
		total_issues, critical_issues, warnings, suggestions,
		health, COALESCE(report_path, ''), created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.Project, &r.ArchivePath,
			&r.TotalIssues, &r.CriticalIssues, &r.Warnings, &r.Suggestions,
			&r.Health, &r.ReportPath, &created); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(created, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
