// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the pick-list (possible secrets) and the allowed guesses from files,
//     or fall back to the lists embedded in the assets package.
//   - Build the sorted Dictionary (answers ∪ allowed) used to validate guesses.
//
// Load behaviour:
//   1. answersPath and allowedPath both set → answers from the first,
//      allowed guesses from the second.
//   2. only allowedPath set → that file serves as both lists.
//   3. neither set → embedded defaults.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); anything else is skipped.
//   • Lists are normalised to lowercase; lines starting with '#' are comments.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
)

// WordLen is the length of every playable word.
const WordLen = 5

var ErrEmptyList = errors.New("words: answers list is empty")

// Lists holds the loaded word data. It is read-only after Load.
type Lists struct {
	Answers []string    // pick-list, file order
	Dict    *Dictionary // answers ∪ allowed, sorted, de-duplicated
}

// Load reads the word lists following the rules in the package comment.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList
	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		ansList, allowList = Filter(ansList), Filter(allowList)
	}
	return FromLists(ansList, allowList)
}

// FromLists builds Lists from already-normalised slices.
func FromLists(answers, allowed []string) (*Lists, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyList
	}
	return &Lists{
		Answers: answers,
		Dict:    NewDictionary(SortedUnion(answers, allowed)),
	}, nil
}

// SortedUnion merges the lists into one sorted slice without duplicates.
func SortedUnion(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range lists {
		for _, w := range l {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// Stats returns counts of loaded words: (answers, dictionary).
func (l *Lists) Stats() (answersCount int, dictCount int) {
	return len(l.Answers), l.Dict.Len()
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// ReadWords scans r for valid words, one per line.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Filter keeps the valid words of list, normalised.
func Filter(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if w, ok := normalize(s); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if strings.HasPrefix(w, "#") || len(w) != WordLen || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
