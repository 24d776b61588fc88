// Package store persists game records, one slot per player.
//
// Implementations may be backed by memory, a local file, SQLite or Redis. All
// of them are safe for concurrent use; Save is last-write-wins.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/phonicle/internal/persist"
)

// ErrNotFound is returned by Load when a player has no stored record.
var ErrNotFound = errors.New("store: record not found")

// Store defines the persistence interface for game records.
type Store interface {
	// Save persists or replaces the player's record.
	Save(ctx context.Context, playerID string, rec persist.Record) error

	// Load retrieves the player's record.
	// Returns ErrNotFound if there is none.
	Load(ctx context.Context, playerID string) (*persist.Record, error)

	// Close releases the backend.
	Close() error
}

// Result is one finished game.
type Result struct {
	PlayerID  string    `json:"-"`
	Date      string    `json:"date"` // daily.DateKey of the game's day
	Solution  string    `json:"solution"`
	Outcome   string    `json:"outcome"` // "won" | "lost"
	Guesses   int       `json:"guesses"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResultRecorder is implemented by stores that keep a history of finished games.
type ResultRecorder interface {
	// RecordResult stores r. A second result for the same player and
	// date is ignored.
	RecordResult(ctx context.Context, r Result) error

	// Results returns up to limit results for a player, newest first.
	Results(ctx context.Context, playerID string, limit int) ([]Result, error)
}
