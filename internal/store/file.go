package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/robalobadob/phonicle/internal/persist"
)

// File is a Store keeping records in one JSON file, keyed by player ID.
// The terminal client uses it with a single well-known player slot.
type File struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*File)(nil)

// NewFile returns a store writing to path. The file is created on first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Save(ctx context.Context, playerID string, rec persist.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		// an unreadable file is replaced rather than blocking every save
		slots = map[string]json.RawMessage{}
	}
	b, err := persist.Marshal(rec)
	if err != nil {
		return err
	}
	slots[playerID] = b

	out, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(f.path), err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, f.path)
}

func (f *File) Load(ctx context.Context, playerID string) (*persist.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return nil, err
	}
	raw, ok := slots[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	return persist.Unmarshal(raw)
}

func (f *File) Close() error { return nil }

// read returns the file's slots; a missing or null file has none.
func (f *File) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	slots := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &slots); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	if slots == nil {
		// the file held a JSON null
		slots = map[string]json.RawMessage{}
	}
	return slots, nil
}
