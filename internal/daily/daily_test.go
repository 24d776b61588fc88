package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/phonicle/internal/words"
)

func TestDaysSinceEpoch(t *testing.T) {
	assert.Equal(t, 0, DaysSinceEpoch(Epoch))
	assert.Equal(t, 0, DaysSinceEpoch(Epoch.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysSinceEpoch(Epoch.Add(24*time.Hour)))
	assert.Equal(t, 365, DaysSinceEpoch(time.Date(2023, time.June, 4, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysSinceEpoch(time.Date(2022, time.June, 3, 0, 0, 0, 0, time.UTC)))
}

func TestWordIndex(t *testing.T) {
	assert.Equal(t, 0, WordIndex(Epoch, 10))
	assert.Equal(t, 3, WordIndex(Epoch.AddDate(0, 0, 13), 10))
	assert.Equal(t, 9, WordIndex(Epoch.AddDate(0, 0, -1), 10))
	assert.Equal(t, 0, WordIndex(Epoch, 0))
}

func TestSelector_Select(t *testing.T) {
	list := words.New([]words.Entry{
		{Word: "TRAIN", Hint: "ay"},
		{Word: "SHEEP", Hint: "ee"},
		{Word: "NIGHT", Hint: "igh"},
	}, nil)

	t.Run("same day same word", func(t *testing.T) {
		sel := NewSelector(list, nil)
		morning := time.Date(2022, time.June, 5, 0, 1, 0, 0, time.UTC)
		evening := time.Date(2022, time.June, 5, 23, 59, 0, 0, time.UTC)

		assert.Equal(t, words.Entry{Word: "SHEEP", Hint: "ee"}, sel.Select(morning))
		assert.Equal(t, sel.Select(morning), sel.Select(evening))
	})

	t.Run("calendar day follows the location", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		sel := NewSelector(list, loc)

		// 20:00 UTC on June 4th is already June 5th in UTC+10
		got := sel.Select(time.Date(2022, time.June, 4, 20, 0, 0, 0, time.UTC))

		assert.Equal(t, "SHEEP", got.Word)
	})

	t.Run("wraps around the list", func(t *testing.T) {
		sel := NewSelector(list, nil)

		got := sel.Select(Epoch.AddDate(0, 0, 5))

		require.NotEmpty(t, got.Word)
		assert.Equal(t, "NIGHT", got.Word)
	})
}

func TestSelector_Day(t *testing.T) {
	at := time.Date(2022, time.June, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2022-06-04", NewSelector(nil, nil).Day(at))
	assert.Equal(t, "2022-06-05", NewSelector(nil, time.FixedZone("UTC+10", 10*60*60)).Day(at))
}
