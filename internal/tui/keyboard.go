package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

const (
	keyEnter  = "ENTER"
	keyDelete = "DEL"
)

// keyboardRows is the on-screen layout: three letter rows, with ENTER and
// DEL flanking the bottom row.
var keyboardRows = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{keyEnter, "Z", "X", "C", "V", "B", "N", "M", keyDelete},
}

var (
	keyBase = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#111111"))

	markStyles = map[game.Classification]lipgloss.Style{
		game.Unseen:  keyBase.Background(lipgloss.Color("#F0F0F0")),
		game.Absent:  keyBase.Background(lipgloss.Color("#8C8C8C")),
		game.Present: keyBase.Background(lipgloss.Color("#E6E631")),
		game.Correct: keyBase.Background(lipgloss.Color("#3DCC3D")),
	}
)

func styleFor(c game.Classification) lipgloss.Style {
	if s, ok := markStyles[c]; ok {
		return s
	}
	return markStyles[game.Unseen]
}

// renderKeyboard draws the layout, colouring letter keys from the session's key state.
func renderKeyboard(s *game.Session) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, label := range row {
			c := game.Unseen
			if len(label) == 1 {
				c = s.KeyState(label[0])
			}
			keys = append(keys, styleFor(c).Render(label))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
