package words

import (
	"crypto/rand"
	"math/big"
)

// fallbackAnswer is used when a picker has nothing to choose from.
const fallbackAnswer = "crane"

// RandomPicker chooses uniformly from a pick-list.
type RandomPicker struct {
	words []string
}

// NewRandomPicker returns a picker over words. The slice is not copied.
func NewRandomPicker(words []string) *RandomPicker {
	return &RandomPicker{words: words}
}

// Pick returns a cryptographically random word from the list.
func (p *RandomPicker) Pick() string {
	if len(p.words) == 0 {
		return fallbackAnswer
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(p.words))))
	if err != nil {
		return p.words[0]
	}
	return p.words[n.Int64()]
}
