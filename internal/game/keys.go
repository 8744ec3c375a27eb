package game

import "fmt"

// KeyState records the best classification seen for each letter A–Z during
// one game. Entries only ever move up the rank order.
type KeyState struct {
	best [Alphabet]Classification
}

// Merge folds one evaluated guess into the key state.
// letters[i] is the guessed letter classified by marks[i].
func (k *KeyState) Merge(marks []Classification, letters string) {
	if len(marks) != len(letters) {
		panic(fmt.Sprintf("game: merge length mismatch: %d marks, %d letters", len(marks), len(letters)))
	}
	for i, m := range marks {
		idx, ok := letterIndex(letters[i])
		if !ok {
			continue
		}
		if m > k.best[idx] {
			k.best[idx] = m
		}
	}
}

// StateOf returns the stored classification for a letter (either case).
// Non-letters are always Unseen.
func (k *KeyState) StateOf(letter byte) Classification {
	idx, ok := letterIndex(letter)
	if !ok {
		return Unseen
	}
	return k.best[idx]
}

// Reset forgets everything.
func (k *KeyState) Reset() {
	k.best = [Alphabet]Classification{}
}

// Snapshot returns the state keyed by uppercase letter, for rendering.
func (k *KeyState) Snapshot() map[string]Classification {
	out := make(map[string]Classification, Alphabet)
	for i, c := range k.best {
		out[string(rune('A'+i))] = c
	}
	return out
}

func letterIndex(b byte) (int, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return int(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), true
	}
	return 0, false
}
