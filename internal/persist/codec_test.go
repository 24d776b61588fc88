package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/phonicle/internal/game"
)

type dict map[string]bool

func (d dict) IsAllowed(w string) bool { return d[w] }

var testDict = dict{"SLATE": true, "TRACE": true, "CRANE": true}

func submit(s game.State, word string) game.State {
	for _, r := range word {
		s = s.EnterLetter(r)
	}
	return s.SubmitGuess(testDict)
}

func TestRecord_JSONShape(t *testing.T) {
	// Given: a record with one partly scored row
	rec := Record{
		Guesses: []StoredRow{{
			Cursor:  2,
			Letters: []StoredLetter{{"C", "Green"}, {"", "Black"}},
		}},
		Solution:        "CRANE",
		Round:           1,
		State:           "Started",
		GamesWon:        3,
		GamesLost:       1,
		WinDistribution: Distribution{0, 1, 2, 0, 0, 0},
	}

	// When: it is encoded
	b, err := Marshal(rec)
	require.NoError(t, err)

	// Then: rows and tiles are tuples
	assert.JSONEq(t, `{
		"Guesses": [[2, [["C", "Green"], ["", "Black"]]]],
		"Solution": "CRANE",
		"Round": 1,
		"State": "Started",
		"GamesWon": 3,
		"GamesLost": 1,
		"WinDistribution": [0, 1, 2, 0, 0, 0]
	}`, string(b))

	back, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, rec, *back)
}

func TestUnmarshal(t *testing.T) {
	t.Run("indexed win distribution", func(t *testing.T) {
		rec, err := Unmarshal([]byte(`{"Solution":"CRANE","WinDistribution":{"0":1,"1":0,"2":4}}`))

		require.NoError(t, err)
		assert.Equal(t, Distribution{1, 0, 4}, rec.WinDistribution)
	})

	t.Run("sparse indexed win distribution", func(t *testing.T) {
		rec, err := Unmarshal([]byte(`{"WinDistribution":{"0":1,"5":2}}`))

		require.NoError(t, err)
		assert.Equal(t, Distribution{1, 0, 0, 0, 0, 2}, rec.WinDistribution)
	})

	t.Run("indexed win distribution out of range", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"WinDistribution":{"-1":1}}`))
		assert.Error(t, err)

		_, err = Unmarshal([]byte(`{"WinDistribution":{"100000000":1}}`))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"Guesses":[[1]]}`))
		assert.Error(t, err)

		_, err = Unmarshal([]byte(`not json`))
		assert.Error(t, err)
	})
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Black", StatusName(game.StatusUnset))
	assert.Equal(t, "Green", StatusName(game.StatusCorrect))
	assert.Equal(t, game.StatusUnset, ParseStatus("Black"))
	assert.Equal(t, game.StatusAbsent, ParseStatus("Grey"))
	assert.Equal(t, game.StatusInvalid, ParseStatus("Purple"))

	assert.Equal(t, "Not Started", OutcomeName(game.OutcomeNotStarted))
	assert.Equal(t, "Started", OutcomeName(game.OutcomeInProgress))
	assert.Equal(t, game.OutcomeLost, ParseOutcome("Lost"))
	assert.Equal(t, game.OutcomeNotStarted, ParseOutcome("???"))
}

func TestRestore(t *testing.T) {
	today := Today{Secret: "CRANE", Hint: "ay"}

	t.Run("first run", func(t *testing.T) {
		s := Restore(today, nil)

		assert.Equal(t, game.New("CRANE", "ay"), s)
	})

	t.Run("round trip", func(t *testing.T) {
		// Given: a game two guesses in, with the stats panel open
		s := game.New("CRANE", "ay")
		s.GamesWon, s.GamesLost = 4, 2
		s.WinDistribution = [game.Rounds]int{0, 1, 3, 0, 0, 0}
		s = submit(submit(s, "SLATE"), "TRACE")
		s = s.EnterLetter('C').ToggleModal(game.ModalStats)

		// When: it is stored and loaded back on the same day
		b, err := Marshal(Encode(s))
		require.NoError(t, err)
		rec, err := Unmarshal(b)
		require.NoError(t, err)
		back := Restore(today, rec)

		// Then: everything but the modal comes back
		want := s
		want.Modals = game.Modals{}
		assert.Equal(t, want, back)
	})

	t.Run("round trip of a finished game", func(t *testing.T) {
		s := submit(game.New("CRANE", "ay"), "CRANE")
		require.Equal(t, game.OutcomeWon, s.Outcome)

		back := Restore(today, ptr(Encode(s)))

		assert.Equal(t, s, back)
		assert.False(t, game.IsRoundPlayable(back))
	})

	t.Run("stale word keeps stats only", func(t *testing.T) {
		// Given: yesterday's finished game
		old := game.New("SLATE", "")
		old.GamesLost = 5
		old = submit(old, "SLATE")
		rec := Encode(old)

		// When: it is loaded on a day with a new word
		s := Restore(today, &rec)

		// Then: the board is fresh and the stats survive
		assert.Equal(t, "CRANE", s.Secret)
		assert.Equal(t, game.OutcomeNotStarted, s.Outcome)
		assert.Equal(t, 0, s.Round)
		assert.Empty(t, s.Keyboard)
		assert.Equal(t, [game.Rounds]game.Row{}, s.Rows)
		assert.Equal(t, 1, s.GamesWon)
		assert.Equal(t, 5, s.GamesLost)
		assert.Equal(t, [game.Rounds]int{1, 0, 0, 0, 0, 0}, s.WinDistribution)
	})

	t.Run("short and long slices are fitted to the board", func(t *testing.T) {
		rec := &Record{
			Guesses: []StoredRow{
				{Cursor: 9, Letters: []StoredLetter{{"s", "Grey"}, {"l", "Grey"}, {"a", "Green"}, {"t", "Grey"}, {"e", "Green"}, {"x", "Grey"}}},
			},
			Solution:        "crane",
			Round:           1,
			State:           "Started",
			WinDistribution: Distribution{1, 2, 3, 4, 5, 6, 7, 8},
		}

		s := Restore(today, rec)

		assert.Equal(t, game.Letters, s.Rows[0].Cursor)
		assert.Equal(t, "SLATE", s.Rows[0].Guess.Word())
		assert.Equal(t, game.Row{}, s.Rows[1])
		assert.Equal(t, [game.Rounds]int{1, 2, 3, 4, 5, 6}, s.WinDistribution)
		assert.Equal(t, game.StatusCorrect, s.Keyboard["A"])
		assert.Equal(t, game.StatusAbsent, s.Keyboard["S"])
		assert.Equal(t, game.OutcomeInProgress, s.Outcome)
	})

	t.Run("round off the board starts over", func(t *testing.T) {
		for _, round := range []int{-1, game.Rounds, 42} {
			// Given: today's record with a corrupt round
			rec := Encode(submit(game.New("CRANE", "ay"), "SLATE"))
			rec.Round = round
			rec.GamesWon = 2

			// When: it is restored
			s := Restore(today, &rec)

			// Then: a playable fresh board with the stats kept
			assert.Equal(t, 0, s.Round, "round %d", round)
			assert.Equal(t, [game.Rounds]game.Row{}, s.Rows)
			assert.Equal(t, game.OutcomeNotStarted, s.Outcome)
			assert.Equal(t, 2, s.GamesWon)
			assert.True(t, game.IsRoundPlayable(s))
		}
	})
}

func ptr[T any](v T) *T { return &v }
