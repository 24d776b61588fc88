// Package daily picks the word of the day.
package daily

import (
	"time"

	"github.com/robalobadob/phonicle/internal/words"
)

// Epoch is day zero of the answer rotation.
var Epoch = time.Date(2022, time.June, 4, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD of t's calendar date in t's location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysSinceEpoch counts whole calendar days from Epoch to t's date in t's location.
// Dates before Epoch give negative numbers.
func DaysSinceEpoch(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}

// WordIndex returns the answer index for t's date: days since Epoch modulo n.
func WordIndex(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	i := DaysSinceEpoch(t) % n
	if i < 0 {
		i += n
	}
	return i
}

// Selector supplies today's secret word and hint.
type Selector struct {
	list *words.List
	loc  *time.Location
}

// NewSelector returns a Selector over list's answers. Calendar days are taken
// in loc; nil means UTC.
func NewSelector(list *words.List, loc *time.Location) *Selector {
	if loc == nil {
		loc = time.UTC
	}
	return &Selector{list: list, loc: loc}
}

// Day returns the DateKey of now's calendar date in the selector's location.
func (s *Selector) Day(now time.Time) string {
	return DateKey(now.In(s.loc))
}

// Select returns the answer for now's calendar date. The same day always gives
// the same entry.
func (s *Selector) Select(now time.Time) words.Entry {
	answers := s.list.Answers()
	if len(answers) == 0 {
		return words.Entry{}
	}
	return answers[WordIndex(now.In(s.loc), len(answers))]
}
