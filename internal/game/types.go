// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Classification: per-letter verdict of a guess, ordered by rank.
//   - Status: progress of a single session (in progress / won / lost).
//   - Cell: one square of the 6x5 grid.
//   - Message: transient signal emitted by a session event.

package game

import (
	"errors"
	"fmt"
)

const (
	// Rows is the number of attempts per game.
	Rows = 6
	// Cols is the number of letters per word.
	Cols = 5
	// Alphabet is the number of letters tracked by a KeyState.
	Alphabet = 26
)

var (
	ErrInvalidGuess = errors.New("invalid guess")
	ErrFinished     = errors.New("game finished")
)

// Classification is the evaluation of a single letter.
// The numeric value doubles as its rank: a higher value is stronger information.
//   - Unseen:  the letter has not been evaluated yet (key state only).
//   - Absent:  the letter is not in the secret, or all occurrences are accounted for.
//   - Present: the letter is in the secret at another position.
//   - Correct: the letter is in the secret at this position.
type Classification uint8

const (
	Unseen Classification = iota
	Absent
	Present
	Correct
)

var classificationNames = [...]string{
	Unseen:  "unseen",
	Absent:  "absent",
	Present: "present",
	Correct: "correct",
}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return fmt.Sprintf("classification(%d)", uint8(c))
}

// MarshalText renders the classification by name for JSON payloads.
func (c Classification) MarshalText() ([]byte, error) {
	if int(c) >= len(classificationNames) {
		return nil, fmt.Errorf("game: unknown classification %d", uint8(c))
	}
	return []byte(classificationNames[c]), nil
}

// UnmarshalText parses a classification name.
func (c *Classification) UnmarshalText(b []byte) error {
	for i, name := range classificationNames {
		if name == string(b) {
			*c = Classification(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown classification %q", string(b))
}

// Status is the coarse state of a session.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Empty is the letter value of a cell with nothing typed in it.
const Empty byte = 0

// Cell is one square of the grid.
type Cell struct {
	Letter byte           // uppercase A–Z, or Empty
	Mark   Classification // Unseen until the row is evaluated
}

// Signal identifies a transient message kind.
type Signal uint8

const (
	NoSignal Signal = iota
	NotAWord
	Incomplete
	Winner
	LostReveal
)

func (s Signal) String() string {
	switch s {
	case NotAWord:
		return "not_a_word"
	case Incomplete:
		return "incomplete"
	case Winner:
		return "winner"
	case LostReveal:
		return "lost"
	}
	return ""
}

// Message is returned by a session event for display. It is never stored.
type Message struct {
	Signal Signal
	Secret string // set only for LostReveal
}

// Text is the player-facing wording of the message.
func (m Message) Text() string {
	switch m.Signal {
	case NotAWord:
		return "Not a word"
	case Incomplete:
		return "Not enough letters"
	case Winner:
		return "You got it"
	case LostReveal:
		return "You lose, word was " + m.Secret
	}
	return ""
}

// Dictionary answers word-validity queries.
type Dictionary interface {
	Contains(word string) bool
}

// Picker chooses secrets for new games.
type Picker interface {
	Pick() string
}
