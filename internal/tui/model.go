// Package tui provides the Bubble Tea front-end for a game session.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cursorStyle  = lipgloss.NewStyle().Padding(0, 1).Underline(true)
	emptyStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements tea.Model over a game session. It translates key presses
// into session events and only reads the session when rendering.
type Model struct {
	session *game.Session
	message game.Message
	width   int
}

// NewModel wraps an existing session.
func NewModel(s *game.Session) *Model {
	return &Model{session: s}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// a message is shown until the next key press
		m.message = game.Message{}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.message = m.session.Submit()
		case tea.KeyBackspace, tea.KeyDelete:
			m.session.DeleteLetter()
		case tea.KeyCtrlN:
			m.session.NewGame()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.session.EnterLetter(r)
			}
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WORDLE"))
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(m.message.Text()))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n\n")
	b.WriteString(renderKeyboard(m.session))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("enter: submit  backspace: delete  ctrl+n: new game  esc: quit"))

	out := b.String()
	if m.width > 0 {
		out = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
	}
	return out
}

func (m *Model) renderGrid() string {
	lines := make([]string, 0, game.Rows)
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, 0, game.Cols)
		for c := 0; c < game.Cols; c++ {
			cells = append(cells, m.renderCell(r, c))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(r, c int) string {
	s := m.session
	cell := s.Cell(r, c)
	if cell.Letter == game.Empty {
		if s.Status() == game.InProgress && r == s.Row() && c == s.Col() {
			return cursorStyle.Render(" ")
		}
		return emptyStyle.Render("·")
	}
	if cell.Mark == game.Unseen {
		return emptyStyle.Foreground(lipgloss.Color("#F0F0F0")).Render(string(cell.Letter))
	}
	return styleFor(cell.Mark).Render(string(cell.Letter))
}

// Message returns the last transient message.
func (m *Model) Message() game.Message { return m.message }
