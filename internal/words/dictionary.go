package words

import "strings"

// Dictionary answers membership queries over a sorted word list.
//
// The list must already be sorted ascending and lowercase; NewDictionary
// trusts its input and does not check. A Dictionary is immutable and may be
// shared by any number of goroutines.
type Dictionary struct {
	words []string
}

// NewDictionary wraps sorted without copying or sorting it.
func NewDictionary(sorted []string) *Dictionary {
	return &Dictionary{words: sorted}
}

// Contains reports whether w is in the dictionary, ignoring case.
func (d *Dictionary) Contains(w string) bool {
	target := strings.ToLower(w)
	lower, upper := 0, len(d.words)-1
	for lower <= upper {
		mid := lower + (upper-lower)/2
		switch {
		case d.words[mid] < target:
			lower = mid + 1
		case d.words[mid] > target:
			upper = mid - 1
		default:
			return true
		}
	}
	return false
}

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.words) }
