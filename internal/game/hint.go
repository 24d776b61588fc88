package game

import "slices"

// splitMark stands for "any one letter" in the middle of a split digraph such as "a-e".
const splitMark = '-'

// HighlightGrapheme lays out word as tiles, marking the first occurrence of
// grapheme Correct and every other letter Present. A grapheme with splitMark in
// second position matches any letter there, so "a-e" finds the "ake" in "cake".
// When grapheme does not occur every tile is Present.
func HighlightGrapheme(grapheme, word string) []Letter {
	w := []rune(word)
	g := []rune(grapheme)

	start := -1
	if len(g) > 0 && len(g) <= len(w) {
		for i := 0; i+len(g) <= len(w); i++ {
			if graphemeMatches(g, w[i:i+len(g)]) {
				start = i
				break
			}
		}
	}

	out := make([]Letter, len(w))
	for i, r := range w {
		st := StatusPresent
		if start >= 0 && i >= start && i < start+len(g) {
			st = StatusCorrect
		}
		out[i] = Letter{Char: r, Status: st}
	}
	return out
}

func graphemeMatches(g, window []rune) bool {
	if slices.Equal(g, window) {
		return true
	}
	if len(g) < 2 || g[1] != splitMark {
		return false
	}
	return g[0] == window[0] && slices.Equal(g[2:], window[2:])
}
