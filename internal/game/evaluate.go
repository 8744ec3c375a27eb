// internal/game/evaluate.go
//
// Guess evaluation using the two-pass consume-and-mark algorithm.
//
// Pass 1 marks exact matches Correct and consumes the letter on both sides.
// Pass 2 gives every unconsumed guess letter the leftmost unconsumed match in
// the secret (Present), consuming both. Whatever is left is Absent.
//
// For any letter, Correct+Present marks never exceed its count in the secret.

package game

import "fmt"

// consumed marks a buffer position that already took part in a match.
const consumed byte = 0

// Evaluate classifies every position of guess against secret.
// Comparison is byte-exact; callers normalise case first.
// It panics if the lengths differ: sessions only submit full rows.
func Evaluate(secret, guess string) []Classification {
	if len(secret) != len(guess) {
		panic(fmt.Sprintf("game: evaluate length mismatch: secret %d, guess %d", len(secret), len(guess)))
	}
	n := len(guess)
	s := []byte(secret)
	g := []byte(guess)
	out := make([]Classification, n)

	for i := 0; i < n; i++ {
		if g[i] == s[i] {
			out[i] = Correct
			s[i], g[i] = consumed, consumed
		}
	}

	for i := 0; i < n; i++ {
		if g[i] == consumed {
			continue
		}
		for j := 0; j < n; j++ {
			if s[j] != consumed && s[j] == g[i] {
				out[i] = Present
				s[j], g[i] = consumed, consumed
				break
			}
		}
	}

	for i := range out {
		if out[i] == Unseen {
			out[i] = Absent
		}
	}
	return out
}

// allCorrect reports whether every mark is Correct.
func allCorrect(marks []Classification) bool {
	for _, m := range marks {
		if m != Correct {
			return false
		}
	}
	return len(marks) > 0
}
