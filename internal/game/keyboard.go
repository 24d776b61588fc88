// internal/game/keyboard.go
//
// On-screen keyboard feedback.
//
// Keyboard folds the verdicts of every scored guess into one best-known status
// per letter. Correct always wins and is never downgraded; Present and Absent
// are only recorded for letters seen for the first time.

package game

import (
	"maps"
	"strings"
)

// Special keys on the on-screen keyboard.
const (
	KeyEnter  = "Ent"
	KeyDelete = "Del"
)

// Layout is the on-screen keyboard, top row first.
var Layout = [3][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{KeyEnter, "Z", "X", "C", "V", "B", "N", "M", KeyDelete},
}

// Keyboard maps an uppercase letter to its best-known status.
type Keyboard map[string]Status

// Fold returns a new Keyboard with the verdicts from letters applied in order.
// Unset and Invalid tiles are ignored. k itself is never modified.
func (k Keyboard) Fold(letters []Letter) Keyboard {
	out := maps.Clone(k)
	if out == nil {
		out = Keyboard{}
	}
	for _, l := range letters {
		if !l.IsSet() {
			continue
		}
		key := strings.ToUpper(l.String())
		_, seen := out[key]
		switch l.Status {
		case StatusCorrect:
			out[key] = l.Status
		case StatusPresent, StatusAbsent:
			if !seen {
				out[key] = l.Status
			}
		}
	}
	return out
}

// StatusOf returns the status for a key, StatusUnset when nothing is known.
func (k Keyboard) StatusOf(key string) Status {
	return k[strings.ToUpper(key)]
}
