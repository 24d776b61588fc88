// internal/persist/record.go
//
// The durable subset of a game and its storage format.
//
// A Record is what stores keep in a player's single slot. Its JSON shape is a
// compatibility format and must not change:
//
//	{"Guesses":[[cursor,[["A","Green"],...]],...],"Solution":"CRANE","Round":0,
//	 "State":"Not Started","GamesWon":0,"GamesLost":0,"WinDistribution":[0,0,0,0,0,0]}
//
// Rows and tiles are JSON arrays (tuples), not objects. Modal visibility is not
// part of the record.

package persist

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the stored form of a game.
type Record struct {
	Guesses         []StoredRow  `json:"Guesses"`
	Solution        string       `json:"Solution"`
	Round           int          `json:"Round"`
	State           string       `json:"State"`
	GamesWon        int          `json:"GamesWon"`
	GamesLost       int          `json:"GamesLost"`
	WinDistribution Distribution `json:"WinDistribution"`
}

// Distribution is the win histogram. It encodes as a JSON array and also
// decodes the {"0":n,"1":n,...} object form older clients wrote.
type Distribution []int

// maxIndexedDistribution bounds the indexes accepted in the object form.
const maxIndexedDistribution = 64

func (d *Distribution) UnmarshalJSON(b []byte) error {
	var list []int
	if err := json.Unmarshal(b, &list); err == nil {
		*d = list
		return nil
	}
	var indexed map[string]int
	if err := json.Unmarshal(b, &indexed); err != nil {
		return fmt.Errorf("persist: win distribution: %w", err)
	}
	byIndex := make(map[int]int, len(indexed))
	size := 0
	for k, v := range indexed {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= maxIndexedDistribution {
			return fmt.Errorf("persist: win distribution: bad index %q", k)
		}
		byIndex[i] = v
		size = max(size, i+1)
	}
	out := make([]int, size)
	for i, v := range byIndex {
		out[i] = v
	}
	*d = out
	return nil
}

// StoredRow is one board row: the entry cursor and its tiles.
// It encodes as [cursor, [tile, ...]].
type StoredRow struct {
	Cursor  int
	Letters []StoredLetter
}

// StoredLetter is one tile. It encodes as [letter, statusName]; letter is ""
// for an empty tile.
type StoredLetter struct {
	Letter string
	Status string
}

func (r StoredRow) MarshalJSON() ([]byte, error) {
	letters := r.Letters
	if letters == nil {
		letters = []StoredLetter{}
	}
	return json.Marshal([2]any{r.Cursor, letters})
}

func (r *StoredRow) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("persist: row: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("persist: row: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &r.Cursor); err != nil {
		return fmt.Errorf("persist: row cursor: %w", err)
	}
	if err := json.Unmarshal(raw[1], &r.Letters); err != nil {
		return fmt.Errorf("persist: row letters: %w", err)
	}
	return nil
}

func (l StoredLetter) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{l.Letter, l.Status})
}

func (l *StoredLetter) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("persist: letter: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("persist: letter: want 2 elements, got %d", len(pair))
	}
	l.Letter, l.Status = pair[0], pair[1]
	return nil
}

// Marshal encodes a record for storage.
func Marshal(rec Record) ([]byte, error) {
	return json.Marshal(rec)
}

// Unmarshal decodes a stored record.
func Unmarshal(b []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("persist: decode record: %w", err)
	}
	return &rec, nil
}
