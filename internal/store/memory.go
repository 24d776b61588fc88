// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used in development/testing, or when durability is not required.
//
// Characteristics:
//   - Records are kept by player ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Finished games are kept too, so /history works without a database.

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/robalobadob/phonicle/internal/persist"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex              // guards records and results
	records map[string]persist.Record // keyed by player ID
	results map[string][]Result       // keyed by player ID, oldest first
}

// NewMemory constructs a new in-memory Store.
func NewMemory() Store {
	return &memory{
		records: make(map[string]persist.Record),
		results: make(map[string][]Result),
	}
}

// Save adds or replaces the player's record.
func (m *memory) Save(ctx context.Context, playerID string, rec persist.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[playerID] = rec
	return nil
}

// Load returns a copy of the player's record or ErrNotFound.
func (m *memory) Load(ctx context.Context, playerID string) (*persist.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[playerID]; ok {
		return &rec, nil
	}
	return nil, ErrNotFound
}

// RecordResult keeps the first result per player and date.
func (m *memory) RecordResult(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.ContainsFunc(m.results[r.PlayerID], func(existing Result) bool {
		return existing.Date == r.Date
	}) {
		return nil
	}
	m.results[r.PlayerID] = append(m.results[r.PlayerID], r)
	return nil
}

// Results returns up to limit results for a player, newest first.
func (m *memory) Results(ctx context.Context, playerID string, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Clone(m.results[playerID])
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []Result{}
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
