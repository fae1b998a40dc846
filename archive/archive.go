// Package archive persists finished battle results to a local SQLite
// database so past runs can be listed and replayed by seed.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nathoo/raidcore/types"
)

const timeFormat = time.RFC3339Nano

const schema = `
CREATE TABLE IF NOT EXISTS battles (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    seed        INTEGER NOT NULL,
    rounds      INTEGER NOT NULL,
    outcome     TEXT NOT NULL,
    survivors   INTEGER NOT NULL,
    log_path    TEXT NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL
);
`

// Store is a SQLite-backed archive of finished battles.
type Store struct {
	sqlDB *sql.DB
}

// Entry is one archived battle, newest battles first in listings.
type Entry struct {
	ID         int64
	Seed       int64
	Rounds     int
	Outcome    string
	Survivors  int
	LogPath    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Open opens the archive at the provided path, creating the battles
// table if it does not exist yet.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure battles table: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record persists one finished battle.
func (s *Store) Record(ctx context.Context, result types.BattleResult, started, finished time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("archive is not configured")
	}
	if started.IsZero() {
		started = time.Now().UTC()
	}
	if finished.IsZero() {
		finished = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO battles (seed, rounds, outcome, survivors, log_path, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.Seed,
		result.Rounds,
		result.Outcome.String(),
		result.Survivors,
		result.LogPath,
		started.UTC().Format(timeFormat),
		finished.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert battle: %w", err)
	}
	return nil
}

// Recent returns up to limit archived battles, newest first.
// A non-positive limit defaults to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("archive is not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, seed, rounds, outcome, survivors, log_path, started_at, finished_at
FROM battles ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query battles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedAt, finishedAt string
		if err := rows.Scan(&e.ID, &e.Seed, &e.Rounds, &e.Outcome, &e.Survivors, &e.LogPath, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan battle row: %w", err)
		}
		if e.StartedAt, err = time.Parse(timeFormat, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if e.FinishedAt, err = time.Parse(timeFormat, finishedAt); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate battle rows: %w", err)
	}
	return entries, nil
}
