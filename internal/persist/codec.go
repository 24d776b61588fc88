package persist

import (
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/phonicle/internal/game"
)

// Status names on the wire. "Black" is the stored name of an unscored tile.
var statusWire = map[game.Status]string{
	game.StatusCorrect: "Green",
	game.StatusPresent: "Yellow",
	game.StatusAbsent:  "Grey",
	game.StatusUnset:   "Black",
	game.StatusInvalid: "Invalid",
}

// Outcome names on the wire.
var outcomeWire = map[game.Outcome]string{
	game.OutcomeNotStarted: "Not Started",
	game.OutcomeWon:        "Won",
	game.OutcomeLost:       "Lost",
	game.OutcomeInProgress: "Started",
}

var (
	statusFromWire  = lo.Invert(statusWire)
	outcomeFromWire = lo.Invert(outcomeWire)
)

// StatusName returns the stored name of a status.
func StatusName(s game.Status) string {
	if name, ok := statusWire[s]; ok {
		return name
	}
	return statusWire[game.StatusInvalid]
}

// ParseStatus maps a stored name back to a status; unknown names are Invalid.
func ParseStatus(name string) game.Status {
	if s, ok := statusFromWire[name]; ok {
		return s
	}
	return game.StatusInvalid
}

// OutcomeName returns the stored name of an outcome.
func OutcomeName(o game.Outcome) string {
	if name, ok := outcomeWire[o]; ok {
		return name
	}
	return outcomeWire[game.OutcomeNotStarted]
}

// ParseOutcome maps a stored name back to an outcome; unknown names are NotStarted.
func ParseOutcome(name string) game.Outcome {
	if o, ok := outcomeFromWire[name]; ok {
		return o
	}
	return game.OutcomeNotStarted
}

// Encode extracts the durable subset of s.
func Encode(s game.State) Record {
	return Record{
		Guesses: lo.Map(s.Rows[:], func(row game.Row, _ int) StoredRow {
			return StoredRow{
				Cursor: row.Cursor,
				Letters: lo.Map(row.Guess[:], func(l game.Letter, _ int) StoredLetter {
					return StoredLetter{Letter: l.String(), Status: StatusName(l.Status)}
				}),
			}
		}),
		Solution:        s.Secret,
		Round:           s.Round,
		State:           OutcomeName(s.Outcome),
		GamesWon:        s.GamesWon,
		GamesLost:       s.GamesLost,
		WinDistribution: append(Distribution(nil), s.WinDistribution[:]...),
	}
}

// Today is the word selector's answer for the current date.
type Today struct {
	Secret string
	Hint   string
}

// Restore builds the live game for today from a stored record.
//
//   - rec == nil: first run, a fresh game.
//   - rec.Solution differs from today's secret, or rec.Round is off the
//     board: a fresh game that keeps GamesWon, GamesLost and WinDistribution.
//   - otherwise the stored game, with rows and distribution padded or cut to
//     the board size and the keyboard rebuilt from the stored rows.
//
// Modals always start hidden.
func Restore(today Today, rec *Record) game.State {
	s := game.New(today.Secret, today.Hint)
	if rec == nil {
		return s
	}

	s.GamesWon = rec.GamesWon
	s.GamesLost = rec.GamesLost
	copy(s.WinDistribution[:], rec.WinDistribution)

	if !strings.EqualFold(strings.TrimSpace(rec.Solution), s.Secret) ||
		rec.Round < 0 || rec.Round >= game.Rounds {
		return s.Restart()
	}

	for i, stored := range rec.Guesses {
		if i >= game.Rounds {
			break
		}
		s.Rows[i] = decodeRow(stored)
	}
	for _, row := range s.Rows {
		s.Keyboard = s.Keyboard.Fold(row.Guess[:])
	}
	s.Outcome = ParseOutcome(rec.State)
	s.Round = rec.Round
	return s
}

func decodeRow(stored StoredRow) game.Row {
	var row game.Row
	row.Cursor = max(0, min(stored.Cursor, game.Letters))
	for i, l := range stored.Letters {
		if i >= game.Letters {
			break
		}
		r := []rune(strings.ToUpper(l.Letter))
		var ch rune
		if len(r) > 0 {
			ch = r[0]
		}
		row.Guess[i] = game.Letter{Char: ch, Status: ParseStatus(l.Status)}
	}
	return row
}
