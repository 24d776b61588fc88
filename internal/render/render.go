// Package render draws a game for the terminal with lipgloss.
//
// Colors follow the usual tile scheme: green for Correct, yellow for Present,
// grey for Absent and red for Invalid. When the output is not a color terminal
// lipgloss drops the colors and the letters remain readable on their own.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/phonicle/internal/game"
	"github.com/robalobadob/phonicle/internal/session"
)

// emptyTile is drawn for a tile with no letter.
const emptyTile = "·"

// barWidth is the terminal width of a full stats bar.
const barWidth = 30

var (
	tileStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	keyStyle  = lipgloss.NewStyle().Padding(0, 1)

	statusColors = map[game.Status]lipgloss.Color{
		game.StatusCorrect: lipgloss.Color("#538d4e"),
		game.StatusPresent: lipgloss.Color("#b59f3b"),
		game.StatusAbsent:  lipgloss.Color("#3a3a3c"),
		game.StatusInvalid: lipgloss.Color("#a61b1b"),
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	barStyle   = lipgloss.NewStyle().Background(statusColors[game.StatusCorrect])
)

func styled(base lipgloss.Style, st game.Status) lipgloss.Style {
	if c, ok := statusColors[st]; ok {
		return base.Background(c).Foreground(lipgloss.Color("#ffffff"))
	}
	return base
}

// Tile draws one letter.
func Tile(l game.Letter) string {
	ch := emptyTile
	if l.IsSet() {
		ch = l.String()
	}
	return styled(tileStyle, l.Status).Render(ch)
}

// Row draws a row of tiles side by side.
func Row(letters []game.Letter) string {
	tiles := make([]string, len(letters))
	for i, l := range letters {
		tiles[i] = Tile(l)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Board draws all rows, top to bottom.
func Board(st game.State) string {
	rows := make([]string, len(st.Rows))
	for i, r := range st.Rows {
		rows[i] = Row(r.Guess[:])
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Keyboard draws the on-screen keyboard colored by what is known of each letter.
func Keyboard(kb game.Keyboard) string {
	lines := make([]string, len(game.Layout))
	for i, keys := range game.Layout {
		cells := make([]string, len(keys))
		for j, k := range keys {
			cells[j] = styled(keyStyle, kb.StatusOf(k)).Render(k)
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// Outcome returns the end-of-game message, or "" while the game is on.
func Outcome(st game.State) string {
	switch st.Outcome {
	case game.OutcomeWon:
		return titleStyle.Render(fmt.Sprintf("Solved in %d! The word was %s.", st.Round+1, st.Secret))
	case game.OutcomeLost:
		return titleStyle.Render("Out of guesses. The word was " + st.Secret + ".")
	}
	return ""
}

// Game draws the board, the keyboard and any end-of-game message.
func Game(st game.State) string {
	parts := []string{boxStyle.Render(Board(st)), Keyboard(st.Keyboard)}
	if msg := Outcome(st); msg != "" {
		parts = append(parts, msg)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Stats draws the stats panel: totals and the guess distribution.
func Stats(s game.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Played %d  Won %d  Lost %d  Win %% %d\n\n", s.Played, s.Won, s.Lost, s.SuccessRate)
	b.WriteString("Guess distribution\n")
	for i, n := range s.Distribution {
		width := s.Bars[i] * barWidth / game.MaxBar
		bar := ""
		if width > 0 {
			bar = barStyle.Render(strings.Repeat(" ", width))
		}
		fmt.Fprintf(&b, "%d %s %d\n", i+1, bar, n)
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Hint draws today's phoneme and an example word for each of its spellings.
func Hint(h session.Hint) string {
	if h.Phoneme == "" {
		return ""
	}
	lines := []string{titleStyle.Render("Sound: " + h.Phoneme)}
	for _, sp := range h.Spellings {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, fmt.Sprintf("%-5s ", sp.Grapheme), Row(sp.Tiles)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
