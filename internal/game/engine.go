// internal/game/engine.go
//
// Game session state machine for a single player.
// Responsibilities:
//   - Hold the 6x5 grid, the row/column cursor and the session status.
//   - Apply the abstract input events: enter letter, delete, submit, new game.
//   - On submit: check the dictionary, evaluate against the secret, merge the
//     result into the key state, and move to the next row, Won or Lost.
//
// Notes:
//   - Letters are stored uppercase and the secret is uppercased on reset, so
//     "all Correct" and "row equals secret" are the same test.
//   - A Session is not safe for concurrent mutation; callers serialise events.
package game

import (
	"strings"

	"github.com/google/uuid"
)

// Session is one player's game, reused across new-game resets.
type Session struct {
	ID string

	dict   Dictionary
	picker Picker

	secret  string
	grid    [Rows][Cols]Cell
	row     int
	col     int
	status  Status
	keys    KeyState
	guesses []string
}

// New constructs a session and starts its first game.
// If withAnswer is empty, the secret comes from picker.
func New(dict Dictionary, picker Picker, withAnswer string) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		dict:   dict,
		picker: picker,
	}
	s.Reset(withAnswer)
	return s
}

// NewGame starts a fresh game with a secret from the picker. Valid in any state.
func (s *Session) NewGame() { s.Reset("") }

// Reset starts a fresh game with the given secret, or a picked one if empty.
func (s *Session) Reset(secret string) {
	if secret == "" {
		secret = s.picker.Pick()
	}
	s.secret = strings.ToUpper(strings.TrimSpace(secret))
	s.grid = [Rows][Cols]Cell{}
	s.row, s.col = 0, 0
	s.status = InProgress
	s.keys.Reset()
	s.guesses = s.guesses[:0]
}

// EnterLetter types r into the cursor cell. Ignored unless the game is in
// progress, the row has room, and r is an ASCII letter.
func (s *Session) EnterLetter(r rune) {
	if s.status != InProgress || s.col >= Cols {
		return
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return
	}
	s.grid[s.row][s.col].Letter = byte(r)
	s.col++
}

// DeleteLetter moves the cursor back one cell and clears it.
func (s *Session) DeleteLetter() {
	if s.status != InProgress || s.col == 0 {
		return
	}
	s.col--
	s.grid[s.row][s.col] = Cell{}
}

// Submit evaluates the current row.
//
// State transitions:
//   - Row not full → Incomplete, nothing changes.
//   - Not a dictionary word → NotAWord, nothing changes.
//   - All Correct → Won.
//   - Otherwise on the last row → Lost, secret revealed.
//   - Otherwise → next row, column 0.
func (s *Session) Submit() Message {
	if s.status != InProgress {
		return Message{}
	}
	if s.col < Cols {
		return Message{Signal: Incomplete}
	}
	word := s.rowWord(s.row)
	if !s.dict.Contains(word) {
		return Message{Signal: NotAWord}
	}

	marks := Evaluate(s.secret, word)
	s.keys.Merge(marks, word)
	for i, m := range marks {
		s.grid[s.row][i].Mark = m
	}
	s.guesses = append(s.guesses, word)

	switch {
	case allCorrect(marks):
		s.status = Won
		return Message{Signal: Winner}
	case s.row == Rows-1:
		s.status = Lost
		return Message{Signal: LostReveal, Secret: s.secret}
	}
	s.row++
	s.col = 0
	return Message{}
}

// ApplyGuess replaces the current row with word and submits it.
// Returns ErrFinished once the game is over and ErrInvalidGuess for input
// that could never fill a row (non-letters or too long).
func (s *Session) ApplyGuess(word string) (Message, error) {
	if s.status != InProgress {
		return Message{}, ErrFinished
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) > Cols || !isAlpha(word) {
		return Message{}, ErrInvalidGuess
	}
	for s.col > 0 {
		s.DeleteLetter()
	}
	for _, r := range word {
		s.EnterLetter(r)
	}
	return s.Submit(), nil
}

// rowWord joins the letters of row r.
func (s *Session) rowWord(r int) string {
	var b strings.Builder
	b.Grow(Cols)
	for _, c := range s.grid[r] {
		if c.Letter != Empty {
			b.WriteByte(c.Letter)
		}
	}
	return b.String()
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// --- read-only accessors for renderers ---

func (s *Session) Status() Status { return s.status }
func (s *Session) Row() int       { return s.row }
func (s *Session) Col() int       { return s.col }

// Cell returns the cell at row r, column c.
func (s *Session) Cell(r, c int) Cell { return s.grid[r][c] }

// Grid returns a copy of the whole grid.
func (s *Session) Grid() [Rows][Cols]Cell { return s.grid }

// KeyState returns the state of letter on the keyboard.
func (s *Session) KeyState(letter byte) Classification { return s.keys.StateOf(letter) }

// Guesses returns the accepted guesses of the current game.
func (s *Session) Guesses() []string {
	out := make([]string, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Revealed returns the secret once the game is lost.
func (s *Session) Revealed() (string, bool) {
	if s.status != Lost {
		return "", false
	}
	return s.secret, true
}
