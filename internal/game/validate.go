package game

// IsRoundPlayable reports whether the current round still accepts input:
// the game is not Won or Lost and the round index is on the board.
func IsRoundPlayable(s State) bool {
	if s.Outcome.Finished() {
		return false
	}
	return s.Round >= 0 && s.Round < Rounds
}

// IsGuessComplete reports whether g can be scored: every tile is filled and the
// uppercased word is accepted by dict.
func IsGuessComplete(g Guess, dict Dictionary) bool {
	if !g.Complete() {
		return false
	}
	word := g.Word()
	if len([]rune(word)) != Letters {
		return false
	}
	return dict != nil && dict.IsAllowed(word)
}

// validPosition reports whether n indexes a tile in a guess.
func validPosition(n int) bool { return n >= 0 && n < Letters }
