// Package sqlite provides a SQLite-backed player record store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/battleship/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
	"github.com/louisbranch/battleship/internal/services/battleship/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists player records in SQLite.
type Store struct {
	sqlDB *sql.DB
	path  string
}

// Open opens a SQLite player store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, path: cleanPath}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Location returns the database file path.
func (s *Store) Location() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load returns every player row.
func (s *Store) Load(ctx context.Context) (storage.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name, wins, losses FROM players ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	records := storage.Records{}
	for rows.Next() {
		var name string
		var stats storage.Stats
		if err := rows.Scan(&name, &stats.Wins, &stats.Losses); err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		records[name] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return records, nil
}

// Save replaces every player row with records in one transaction.
func (s *Store) Save(ctx context.Context, records storage.Records) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear players: %w", err)
	}
	updatedAt := time.Now().UTC().UnixMilli()
	for name, stats := range records {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO players (name, wins, losses, updated_at) VALUES (?, ?, ?, ?)`,
			name,
			stats.Wins,
			stats.Losses,
			updatedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert player %q: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

var (
	_ storage.Store   = (*Store)(nil)
	_ storage.Locator = (*Store)(nil)
)
