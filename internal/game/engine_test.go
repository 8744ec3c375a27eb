package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setDict map[string]bool

func (d setDict) Contains(w string) bool { return d[strings.ToLower(w)] }

type queuePicker struct {
	words []string
	calls int
}

func (p *queuePicker) Pick() string {
	w := p.words[p.calls%len(p.words)]
	p.calls++
	return w
}

var testDict = setDict{
	"crane": true, "slate": true, "pious": true, "dough": true,
	"lymph": true, "fjord": true, "waltz": true, "geese": true,
}

func newTestSession(secrets ...string) (*Session, *queuePicker) {
	p := &queuePicker{words: secrets}
	return New(testDict, p, ""), p
}

func typeWord(s *Session, w string) {
	for _, r := range w {
		s.EnterLetter(r)
	}
}

func TestNew_StartsInProgress(t *testing.T) {
	t.Parallel()
	s, p := newTestSession("crane")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, InProgress, s.Status())
	assert.Equal(t, 0, s.Row())
	assert.Equal(t, 0, s.Col())
	assert.Equal(t, 1, p.calls)
	_, revealed := s.Revealed()
	assert.False(t, revealed)
}

func TestNew_WithAnswerSkipsPicker(t *testing.T) {
	t.Parallel()
	p := &queuePicker{words: []string{"slate"}}
	s := New(testDict, p, "crane")
	assert.Equal(t, 0, p.calls)
	typeWord(s, "crane")
	assert.Equal(t, Winner, s.Submit().Signal)
}

func TestEnterLetter(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")

	s.EnterLetter('c')
	assert.Equal(t, byte('C'), s.Cell(0, 0).Letter, "letters are stored uppercase")
	assert.Equal(t, 1, s.Col())

	s.EnterLetter('1')
	s.EnterLetter(' ')
	assert.Equal(t, 1, s.Col(), "non-letters are ignored")

	typeWord(s, "RANE")
	assert.Equal(t, 5, s.Col())
	s.EnterLetter('X')
	assert.Equal(t, 5, s.Col(), "a full row ignores further letters")
	assert.Equal(t, byte('E'), s.Cell(0, 4).Letter)
}

func TestDeleteLetter(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")

	s.DeleteLetter()
	assert.Equal(t, 0, s.Col(), "delete at column 0 is a no-op")

	typeWord(s, "CR")
	s.DeleteLetter()
	assert.Equal(t, 1, s.Col())
	assert.Equal(t, Empty, s.Cell(0, 1).Letter)
	assert.Equal(t, byte('C'), s.Cell(0, 0).Letter)
}

func TestSubmit_IncompleteRowChangesNothing(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	typeWord(s, "CRA")
	before := s.Grid()

	msg := s.Submit()
	assert.Equal(t, Incomplete, msg.Signal)
	assert.Equal(t, 0, s.Row())
	assert.Equal(t, 3, s.Col())
	assert.Equal(t, before, s.Grid())
	assert.Equal(t, InProgress, s.Status())
}

func TestSubmit_NotAWordKeepsLetters(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	typeWord(s, "ZZZZZ")

	msg := s.Submit()
	assert.Equal(t, NotAWord, msg.Signal)
	assert.Equal(t, "Not a word", msg.Text())
	assert.Equal(t, 0, s.Row())
	assert.Equal(t, 5, s.Col())
	assert.Equal(t, byte('Z'), s.Cell(0, 4).Letter)
	assert.Equal(t, Unseen, s.Cell(0, 0).Mark)
	assert.Equal(t, Unseen, s.KeyState('Z'))
	assert.Empty(t, s.Guesses())

	s.DeleteLetter()
	s.EnterLetter('Y')
	assert.Equal(t, byte('Y'), s.Cell(0, 4).Letter, "the row stays editable")
}

func TestSubmit_ValidGuessAdvances(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	typeWord(s, "slate")

	msg := s.Submit()
	assert.Equal(t, NoSignal, msg.Signal)
	assert.Equal(t, 1, s.Row())
	assert.Equal(t, 0, s.Col())
	assert.Equal(t, []string{"SLATE"}, s.Guesses())

	want := []Classification{A, A, C, A, C}
	for i, m := range want {
		assert.Equal(t, m, s.Cell(0, i).Mark, "col %d", i)
	}
	assert.Equal(t, Correct, s.KeyState('A'))
	assert.Equal(t, Absent, s.KeyState('S'))
	assert.Equal(t, Unseen, s.KeyState('C'))
}

func TestSubmit_WinOnAnyRow(t *testing.T) {
	t.Parallel()
	for misses := 0; misses < Rows; misses++ {
		s, _ := newTestSession("crane")
		for i := 0; i < misses; i++ {
			typeWord(s, "fjord")
			require.Equal(t, NoSignal, s.Submit().Signal)
		}
		typeWord(s, "crane")
		msg := s.Submit()
		assert.Equal(t, Winner, msg.Signal, "misses=%d", misses)
		assert.Equal(t, Won, s.Status())
		assert.Equal(t, misses, s.Row(), "the winning row stays current")
		_, revealed := s.Revealed()
		assert.False(t, revealed)
	}
}

func TestSubmit_SixMissesLoses(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	guesses := []string{"slate", "pious", "dough", "lymph", "fjord", "waltz"}
	var msg Message
	for _, g := range guesses {
		typeWord(s, g)
		msg = s.Submit()
	}
	assert.Equal(t, LostReveal, msg.Signal)
	assert.Equal(t, "CRANE", msg.Secret)
	assert.Equal(t, "You lose, word was CRANE", msg.Text())
	assert.Equal(t, Lost, s.Status())
	assert.Equal(t, Rows-1, s.Row())

	secret, ok := s.Revealed()
	assert.True(t, ok)
	assert.Equal(t, "CRANE", secret)
}

func TestFinishedGameIgnoresInput(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	typeWord(s, "crane")
	require.Equal(t, Winner, s.Submit().Signal)

	grid := s.Grid()
	s.EnterLetter('A')
	s.DeleteLetter()
	assert.Equal(t, NoSignal, s.Submit().Signal)
	assert.Equal(t, grid, s.Grid())
	assert.Equal(t, Won, s.Status())
}

func TestNewGame_ResetsFromWonAndLost(t *testing.T) {
	t.Parallel()
	s, p := newTestSession("crane", "slate")
	typeWord(s, "crane")
	require.Equal(t, Winner, s.Submit().Signal)

	s.NewGame()
	assertFresh(t, s)
	assert.Equal(t, 2, p.calls)

	for _, g := range []string{"pious", "dough", "lymph", "fjord", "waltz", "crane"} {
		typeWord(s, g)
		s.Submit()
	}
	require.Equal(t, Lost, s.Status())

	s.NewGame()
	assertFresh(t, s)
	typeWord(s, "crane")
	s.Submit()
	assert.Equal(t, Won, s.Status(), "third game picks crane again from the queue")
}

func TestNewGame_MidGame(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane", "slate")
	typeWord(s, "pious")
	s.Submit()
	typeWord(s, "dou")

	s.NewGame()
	assertFresh(t, s)
}

func assertFresh(t *testing.T, s *Session) {
	t.Helper()
	assert.Equal(t, InProgress, s.Status())
	assert.Equal(t, 0, s.Row())
	assert.Equal(t, 0, s.Col())
	assert.Equal(t, [Rows][Cols]Cell{}, s.Grid())
	assert.Empty(t, s.Guesses())
	for b := byte('A'); b <= 'Z'; b++ {
		assert.Equal(t, Unseen, s.KeyState(b))
	}
}

func TestApplyGuess(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")

	_, err := s.ApplyGuess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, err = s.ApplyGuess("cranes")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	typeWord(s, "xy")
	msg, err := s.ApplyGuess(" Slate ")
	require.NoError(t, err)
	assert.Equal(t, NoSignal, msg.Signal)
	assert.Equal(t, []string{"SLATE"}, s.Guesses(), "typed letters are replaced")

	msg, err = s.ApplyGuess("cra")
	require.NoError(t, err)
	assert.Equal(t, Incomplete, msg.Signal)

	msg, err = s.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, Winner, msg.Signal)

	_, err = s.ApplyGuess("slate")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestSnapshot_JSON(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession("crane")
	for _, g := range []string{"slate", "pious", "dough", "lymph", "fjord"} {
		_, err := s.ApplyGuess(g)
		require.NoError(t, err)
	}
	v := s.Snapshot(Message{})
	assert.Empty(t, v.Secret)
	assert.Equal(t, "S", v.Cells[0][0].Letter)

	msg, err := s.ApplyGuess("waltz")
	require.NoError(t, err)
	v = s.Snapshot(msg)
	assert.Equal(t, "CRANE", v.Secret)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "lost", decoded["status"])
	assert.Equal(t, "lost", decoded["signal"])
	assert.Equal(t, "correct", decoded["keys"].(map[string]any)["A"])
	assert.Equal(t, "unseen", decoded["keys"].(map[string]any)["Q"])
}
