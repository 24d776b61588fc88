// internal/game/engine.go
//
// Core game engine for a single game.
// Responsibilities:
//   - Create new games (6 rounds x 5 letters) for a secret word and hint.
//   - Apply key presses: enter a letter, delete a letter, submit the row.
//   - Score submitted rows, fold verdicts into the keyboard, detect win/loss.
//   - Keep cumulative stats (wins, losses, win distribution) across restarts.
//
// Notes:
//   - State is a value. Every transition returns a new State and never
//     modifies the receiver; the keyboard map is cloned when it changes.
//   - Invalid input never errors. Moves on a finished game or off the end of a
//     row are ignored, and a row that cannot be scored is marked Invalid.
package game

import (
	"strings"
	"unicode"
)

// State is the authoritative record of one player's game.
type State struct {
	Secret          string
	Hint            string
	Rows            [Rounds]Row
	Modals          Modals
	Keyboard        Keyboard
	Outcome         Outcome
	Round           int
	GamesWon        int
	GamesLost       int
	WinDistribution [Rounds]int
}

// New constructs a fresh, not started game. The secret is canonicalized to
// uppercase and must be Letters long.
func New(secret, hint string) State {
	return State{
		Secret:   strings.ToUpper(strings.TrimSpace(secret)),
		Hint:     hint,
		Keyboard: Keyboard{},
	}
}

// Restart returns a fresh game for the same secret and hint that keeps the
// cumulative stats.
func (s State) Restart() State {
	n := New(s.Secret, s.Hint)
	n.GamesWon = s.GamesWon
	n.GamesLost = s.GamesLost
	n.WinDistribution = s.WinDistribution
	return n
}

// CurrentRow returns the row the player is editing (or the row the game ended on).
func (s State) CurrentRow() Row {
	if s.Round < 0 || s.Round >= Rounds {
		return Row{}
	}
	return s.Rows[s.Round]
}

// updateRow applies f to the current row when the round is playable.
func (s State) updateRow(f func(Row) Row) State {
	if !IsRoundPlayable(s) {
		return s
	}
	s.Rows[s.Round] = f(s.Rows[s.Round])
	return s
}

// EnterLetter writes r at the current row's cursor and advances the cursor.
// Non-letters and a full row are ignored.
func (s State) EnterLetter(r rune) State {
	if !unicode.IsLetter(r) {
		return s
	}
	r = unicode.ToUpper(r)
	return s.updateRow(func(row Row) Row {
		if !validPosition(row.Cursor) {
			return row
		}
		row.Guess[row.Cursor] = Letter{Char: r, Status: StatusUnset}
		row.Cursor++
		return row
	})
}

// DeleteLetter clears the tile before the cursor and moves the cursor back.
func (s State) DeleteLetter() State {
	return s.updateRow(func(row Row) Row {
		pos := row.Cursor - 1
		if !validPosition(pos) {
			return row
		}
		row.Guess[pos] = Letter{}
		row.Cursor = pos
		return row
	})
}

// SubmitGuess scores the current row.
//
// A row that is incomplete or not in dict is marked Invalid and nothing else
// changes. Otherwise the row is scored, the keyboard updated and the outcome
// decided: Won when the word matches, Lost on the last round, else InProgress.
// The round only advances while the game is in progress.
func (s State) SubmitGuess(dict Dictionary) State {
	if !IsRoundPlayable(s) {
		return s
	}
	row := s.Rows[s.Round]
	if !IsGuessComplete(row.Guess, dict) {
		row.Guess = row.Guess.withStatus(StatusInvalid)
		s.Rows[s.Round] = row
		return s
	}

	scored := ScoreGuess(s.Secret, row.Guess)
	s.Rows[s.Round] = Row{Cursor: row.Cursor, Guess: scored}
	s.Keyboard = s.Keyboard.Fold(scored[:])

	switch {
	case scored.Word() == s.Secret:
		s.Outcome = OutcomeWon
		s.GamesWon++
		s.WinDistribution[s.Round]++
	case s.Round == Rounds-1:
		s.Outcome = OutcomeLost
		s.GamesLost++
	default:
		s.Outcome = OutcomeInProgress
		s.Round++
	}
	return s
}

// ToggleModal flips a UI-only panel. It works in every outcome.
func (s State) ToggleModal(m Modal) State {
	switch m {
	case ModalInfo:
		s.Modals.Info = !s.Modals.Info
	case ModalHelp:
		s.Modals.Help = !s.Modals.Help
	case ModalStats:
		s.Modals.Stats = !s.Modals.Stats
	}
	return s
}

// Press dispatches an on-screen key: Ent/Enter submits, Del/Backspace deletes,
// a single letter is entered. Anything else leaves s unchanged.
func (s State) Press(key string, dict Dictionary) State {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "ent", "enter", "return":
		return s.SubmitGuess(dict)
	case "del", "delete", "backspace":
		return s.DeleteLetter()
	}
	r := []rune(strings.TrimSpace(key))
	if len(r) != 1 {
		return s
	}
	return s.EnterLetter(r[0])
}
