// apps/solver/internal/history/store.go
//
// SQLite day cache for archive snapshots.
//
// Responsibilities:
//   - Open (and create if missing) the cache database with WAL + busy timeout.
//   - Keep one snapshot of the archive per UTC date key.
//   - Serve same-day reloads without touching the network.
//
// Only upstream archive data lands here; game and simulation results are
// never persisted.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS used_words (
    date TEXT NOT NULL,
    word TEXT NOT NULL,
    PRIMARY KEY (date, word)
);`

// Store is the SQLite-backed day cache.
type Store struct {
	db *sql.DB
}

// Open opens the cache database at dsn, creating the parent directory
// for relative paths like ./data/history.db.
func Open(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create used_words: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Snapshot returns the cached word list for date, or nil when the date
// has no snapshot yet.
func (s *Store) Snapshot(ctx context.Context, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM used_words WHERE date=? ORDER BY word ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Save stores list as the snapshot for date. Words already cached for
// the date are left in place.
func (s *Store) Save(ctx context.Context, date string, list []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, w := range list {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO used_words(date, word) VALUES(?, ?)`, date, w); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("cache %s: %w", w, err)
		}
	}
	return tx.Commit()
}

// Prune drops snapshots older than date, keeping the cache one day deep.
func (s *Store) Prune(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM used_words WHERE date < ?`, date)
	return err
}
