// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Status:  per-letter verdict of a guess (correct/present/absent), plus the
//              two display-only states unset and invalid.
//   - Outcome: where a game is in its lifecycle.
//   - Letter, Guess, Row: the board, one Row per round.
//   - Modal:   the three UI-only panels a client can toggle.

package game

import (
	"fmt"
	"unicode"
)

const (
	// Rounds is the number of guesses a player gets.
	Rounds = 6
	// Letters is the length of every guess and secret word.
	Letters = 5
)

// Status is the verdict for a single letter on the board.
// The zero value is StatusUnset: an empty or not yet scored tile.
type Status int

const (
	StatusUnset   Status = iota // not scored yet
	StatusCorrect               // right letter, right position
	StatusPresent               // in the word, elsewhere
	StatusAbsent                // not in the word (or all copies already claimed)
	StatusInvalid               // submitted row was rejected; visual cue only
)

var statusNames = [...]string{
	StatusUnset:   "unset",
	StatusCorrect: "correct",
	StatusPresent: "present",
	StatusAbsent:  "absent",
	StatusInvalid: "invalid",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name for JSON responses.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Outcome is the lifecycle of a game. Won and Lost are terminal.
type Outcome int

const (
	OutcomeNotStarted Outcome = iota
	OutcomeInProgress
	OutcomeWon
	OutcomeLost
)

var outcomeNames = [...]string{
	OutcomeNotStarted: "not_started",
	OutcomeInProgress: "in_progress",
	OutcomeWon:        "won",
	OutcomeLost:       "lost",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name for JSON responses.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Finished reports whether the outcome is terminal.
func (o Outcome) Finished() bool { return o == OutcomeWon || o == OutcomeLost }

// Letter is one tile: a character (0 when empty) and its verdict.
type Letter struct {
	Char   rune
	Status Status
}

// IsSet reports whether a character has been written to the tile.
func (l Letter) IsSet() bool { return l.Char != 0 }

// String returns the tile's character, or "" for an empty tile.
func (l Letter) String() string {
	if !l.IsSet() {
		return ""
	}
	return string(l.Char)
}

// Guess is a fixed-width row of letters. Its length never changes.
type Guess [Letters]Letter

// Word concatenates the guess's characters, uppercased. Empty tiles contribute nothing.
func (g Guess) Word() string {
	out := make([]rune, 0, Letters)
	for _, l := range g {
		if l.IsSet() {
			out = append(out, unicode.ToUpper(l.Char))
		}
	}
	return string(out)
}

// Complete reports whether every tile has a character.
func (g Guess) Complete() bool {
	for _, l := range g {
		if !l.IsSet() {
			return false
		}
	}
	return true
}

// withStatus returns a copy of the guess with every tile set to st.
func (g Guess) withStatus(st Status) Guess {
	for i := range g {
		g[i].Status = st
	}
	return g
}

// Row is one round on the board: the guess and the next writable position.
type Row struct {
	Cursor int
	Guess  Guess
}

// Modal identifies a UI-only panel.
type Modal int

const (
	ModalInfo Modal = iota
	ModalHelp
	ModalStats
)

// ParseModal maps "info" | "help" | "stats" to a Modal.
func ParseModal(s string) (Modal, bool) {
	switch s {
	case "info":
		return ModalInfo, true
	case "help":
		return ModalHelp, true
	case "stats":
		return ModalStats, true
	}
	return 0, false
}

// Modals holds panel visibility. It is never persisted.
type Modals struct {
	Info  bool `json:"info"`
	Help  bool `json:"help"`
	Stats bool `json:"stats"`
}

// Dictionary decides which complete words are accepted as guesses.
type Dictionary interface {
	IsAllowed(word string) bool
}
