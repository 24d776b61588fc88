package game

import "maps"

// Counter is the multiset of secret letters not already claimed by an exact match.
// It is treated as a value: Decrement returns a new Counter.
type Counter map[rune]int

// NewCounter counts, per letter, the secret positions whose guess letter differs.
func NewCounter(secret, guess []rune) Counter {
	c := make(Counter, len(secret))
	for i, s := range secret {
		if i < len(guess) && guess[i] == s {
			continue
		}
		c[s]++
	}
	return c
}

// CountOf returns the remaining count for r, 0 if r is absent.
func (c Counter) CountOf(r rune) int { return c[r] }

// Decrement returns a counter with r's count reduced by one.
// Decrementing a letter that is not present returns c unchanged.
func (c Counter) Decrement(r rune) Counter {
	n, ok := c[r]
	if !ok {
		return c
	}
	out := maps.Clone(c)
	out[r] = n - 1
	return out
}
