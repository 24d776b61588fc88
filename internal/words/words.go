// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the answer list (with phoneme hints) and the accepted guess list from
//     configured files, or fall back to the tables embedded in assets.
//   - Answer dictionary lookups for the round validator (answers ∪ allowed).
//   - Expose the phoneme → grapheme hint table shown in the help panel.
//
// Word lists:
//   - "answers": "word,hint" lines; order matters, the daily selector indexes it.
//   - "allowed": one word per line; answers are always allowed too.
//
// Initialization behavior (Load):
//  1. If both paths are set, answers come from the first, allowed from the second.
//  2. If only the allowed path is set, the embedded answers are kept and the
//     file extends the allowed set.
//  3. Otherwise the embedded tables are used.
//
// Constraints:
//   - Words must be 5 ASCII letters; anything else is dropped.
//   - Words are stored uppercase.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/phonicle/assets"
	"github.com/robalobadob/phonicle/internal/game"
)

// Entry is an answer and the phoneme it practices.
type Entry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Grapheme is one way of spelling a phoneme, with an example word.
type Grapheme struct {
	Grapheme string `json:"grapheme"`
	Example  string `json:"example"`
}

// List holds the loaded word tables. It is read-only after Load.
type List struct {
	answers    []Entry
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
	graphemes  map[string][]Grapheme
}

var _ game.Dictionary = (*List)(nil)

// ErrNoAnswers is returned when no usable answer survives loading.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Load builds a List from the given files, falling back to embedded defaults.
func Load(answersPath, allowedPath string) (*List, error) {
	var (
		answers []Entry
		allowed []string
		err     error
	)

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if answers, err = readAnswerFile(answersPath); err != nil {
			return nil, err
		}
		if allowed, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → extends the embedded guesses
	case answersPath == "" && allowedPath != "":
		if answers, err = embeddedAnswers(); err != nil {
			return nil, err
		}
		if allowed, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		extra, err := embeddedAllowed()
		if err != nil {
			return nil, err
		}
		allowed = append(allowed, extra...)

	// Case 3: fallback to embedded defaults
	default:
		if answers, err = embeddedAnswers(); err != nil {
			return nil, err
		}
		if allowed, err = embeddedAllowed(); err != nil {
			return nil, err
		}
	}

	lines, err := assets.GraphemesList()
	if err != nil {
		return nil, fmt.Errorf("words: read graphemes: %w", err)
	}

	l := New(answers, allowed)
	l.graphemes = parseGraphemes(lines)
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// New builds a List from in-memory tables. Invalid words are dropped and
// answers are always allowed as guesses.
func New(answers []Entry, allowed []string) *List {
	clean := lo.FilterMap(answers, func(e Entry, _ int) (Entry, bool) {
		w := normalize(e.Word)
		return Entry{Word: w, Hint: strings.TrimSpace(e.Hint)}, isWord(w)
	})
	clean = lo.UniqBy(clean, func(e Entry) string { return e.Word })

	l := &List{
		answers:    clean,
		answersSet: toSet(lo.Map(clean, func(e Entry, _ int) string { return e.Word })),
		allowedSet: make(map[string]struct{}, len(clean)+len(allowed)),
		graphemes:  map[string][]Grapheme{},
	}
	for w := range l.answersSet {
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = normalize(w); isWord(w) {
			l.allowedSet[w] = struct{}{}
		}
	}
	return l
}

// Answers returns the answer list in selection order.
func (l *List) Answers() []Entry { return l.answers }

// IsAllowed reports whether w is an accepted guess (case-insensitive).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[normalize(w)]
	return ok
}

// IsAnswer reports whether w is on the answer list.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[normalize(w)]
	return ok
}

// Graphemes returns the spellings listed for a phoneme hint, nil if unknown.
func (l *List) Graphemes(hint string) []Grapheme {
	return l.graphemes[strings.ToLower(strings.TrimSpace(hint))]
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

func embeddedAnswers() ([]Entry, error) {
	lines, err := assets.AnswersList()
	if err != nil {
		return nil, fmt.Errorf("words: read embedded answers: %w", err)
	}
	return lo.Map(lines, func(s string, _ int) Entry { return parseEntry(s) }), nil
}

func embeddedAllowed() ([]string, error) {
	lines, err := assets.AllowedList()
	if err != nil {
		return nil, fmt.Errorf("words: read embedded allowed: %w", err)
	}
	return lines, nil
}

// readAnswerFile loads "word,hint" lines from a file. Blank lines and
// "#" comments are skipped; a missing hint is left empty.
func readAnswerFile(path string) ([]Entry, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return lo.Map(lines, func(s string, _ int) Entry { return parseEntry(s) }), nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	return readLines(path)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

func parseEntry(line string) Entry {
	word, hint, _ := strings.Cut(line, ",")
	return Entry{Word: word, Hint: hint}
}

// parseGraphemes turns "phoneme grapheme example" lines into a lookup table.
func parseGraphemes(lines []string) map[string][]Grapheme {
	out := make(map[string][]Grapheme)
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) != 3 {
			continue
		}
		key := strings.ToLower(f[0])
		out[key] = append(out[key], Grapheme{Grapheme: f[1], Example: f[2]})
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

func normalize(w string) string { return strings.ToUpper(strings.TrimSpace(w)) }

// isWord reports whether w is game.Letters uppercase ASCII letters.
func isWord(w string) bool {
	if len(w) != game.Letters {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
