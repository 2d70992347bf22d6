// Package runlog keeps the local history of generated runs and dispatch
// attempts in SQLite. The history is operational convenience only; deleting
// the database loses nothing the run directories cannot rebuild.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"loopcast/internal/config"
	"loopcast/internal/dispatch"
)

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "runlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun stores one generated run.
func (s *Store) RecordRun(ctx context.Context, runID, packageID, title string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, package_id, title, created_at) VALUES (?, ?, ?, ?)
         ON CONFLICT(run_id) DO UPDATE SET package_id = excluded.package_id, title = excluded.title`,
		runID, packageID, title, timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordDispatch stores the outcome of one dispatch attempt.
func (s *Store) RecordDispatch(ctx context.Context, runID string, opts dispatch.Options, result *dispatch.Result) error {
	mode := "dry-run"
	if opts.Real {
		mode = "real"
	}
	allowed := 1
	denialReason := ""
	if result.Denied != nil {
		allowed = 0
		denialReason = result.Denied.Reason
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatches (
            run_id, request_id, mode, window_key, platform_filter,
            allowed, denial_reason, platforms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		result.RequestID,
		mode,
		opts.Window,
		nullableString(opts.Platform),
		allowed,
		nullableString(denialReason),
		platformSummary(result),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// RunRecord is one row of the run history joined with its dispatch count
// and the latest dispatch outcome.
type RunRecord struct {
	RunID       string
	PackageID   string
	Title       string
	CreatedAt   time.Time
	Dispatches  int
	LastMode    string
	LastOutcome string
}

// ListRuns returns the run history, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.run_id, r.package_id, r.title, r.created_at,
                COUNT(d.id),
                COALESCE((SELECT mode FROM dispatches WHERE run_id = r.run_id ORDER BY id DESC LIMIT 1), ''),
                COALESCE((SELECT CASE WHEN allowed = 1 THEN 'dispatched' ELSE 'denied: ' || COALESCE(denial_reason, '') END
                          FROM dispatches WHERE run_id = r.run_id ORDER BY id DESC LIMIT 1), '')
         FROM runs r
         LEFT JOIN dispatches d ON d.run_id = r.run_id
         GROUP BY r.id
         ORDER BY r.run_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		var createdAt string
		if err := rows.Scan(&record.RunID, &record.PackageID, &record.Title, &createdAt, &record.Dispatches, &record.LastMode, &record.LastOutcome); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			record.CreatedAt = parsed
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func platformSummary(result *dispatch.Result) string {
	if len(result.Platforms) == 0 {
		return ""
	}
	parts := make([]string, 0, len(result.Platforms))
	for _, platform := range result.Platforms {
		parts = append(parts, platform.Platform+"="+platform.Status)
	}
	return strings.Join(parts, ",")
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
