// internal/store/sqlite.go
//
// SQLite implementation of Store and ResultRecorder.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - One JSON record per player in game_records; finished games in game_results.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/phonicle/assets"
	"github.com/robalobadob/phonicle/internal/persist"
)

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

var (
	_ Store          = (*SQLite)(nil)
	_ ResultRecorder = (*SQLite)(nil)
)

// NewSQLite opens (creating if missing) the database at path and migrates it.
func NewSQLite(path string) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// openDB opens a SQLite database file.
//
//   - Ensures the parent directory exists for relative paths (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling.
//   - Enforces foreign keys.
func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies *.sql files from migrations in lexical order.
// Applied files are recorded in _migrations and skipped next time. Each file
// runs in its own transaction.
func migrate(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save upserts the player's record.
func (s *SQLite) Save(ctx context.Context, playerID string, rec persist.Record) error {
	b, err := persist.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO game_records (player_id, record, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(player_id) DO UPDATE SET record=excluded.record, updated_at=excluded.updated_at`,
		playerID, string(b), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Load reads the player's record or returns ErrNotFound.
func (s *SQLite) Load(ctx context.Context, playerID string) (*persist.Record, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM game_records WHERE player_id=?`, playerID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	return persist.Unmarshal([]byte(raw))
}

// RecordResult inserts a finished game.
// Respects UNIQUE(player_id, date_key): a repeat is ignored (no error).
func (s *SQLite) RecordResult(ctx context.Context, r Result) error {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO game_results
            (player_id, date_key, solution, outcome, guesses, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.PlayerID, r.Date, strings.ToUpper(r.Solution), r.Outcome, r.Guesses, created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Results fetches a player's finished games, newest first.
// Default limit is 20 if not specified.
func (s *SQLite) Results(ctx context.Context, playerID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT date_key, solution, outcome, guesses, created_at
        FROM game_results
        WHERE player_id=?
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		r := Result{PlayerID: playerID}
		var created string
		if err := rows.Scan(&r.Date, &r.Solution, &r.Outcome, &r.Guesses, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Ping verifies database connectivity.
func (s *SQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }
