// internal/game/score.go
//
// Guess scoring.
//
// Score walks the guess once, left to right, carrying a Counter built up front
// from the whole (secret, guess) pair sequence. Exact matches are excluded from
// the counter before the pass starts, so a later exact match never frees a letter
// already spent on an earlier Present. This is what keeps duplicate letters honest:
// a letter is never marked Present more times than it remains unclaimed in the secret.

package game

import (
	"slices"
	"strings"
	"unicode"
)

// Score returns one Status per guess letter.
// secret and guess must have the same number of letters; anything else is a
// programming error and panics.
func Score(secret, guess string) []Status {
	s := []rune(strings.ToUpper(secret))
	g := []rune(strings.ToUpper(guess))
	if len(s) != len(g) {
		panic("game: Score called with secret and guess of different lengths")
	}

	counter := NewCounter(s, g)
	out := make([]Status, len(g))
	for i, r := range g {
		switch {
		case r == s[i]:
			out[i] = StatusCorrect
		case slices.Contains(s, r) && counter.CountOf(r) > 0:
			out[i] = StatusPresent
			counter = counter.Decrement(r)
		default:
			out[i] = StatusAbsent
		}
	}
	return out
}

// ScoreGuess returns g with each tile's status filled in against secret.
// Characters are canonicalized to uppercase.
func ScoreGuess(secret string, g Guess) Guess {
	marks := Score(secret, g.Word())
	for i := range g {
		g[i] = Letter{Char: unicode.ToUpper(g[i].Char), Status: marks[i]}
	}
	return g
}
