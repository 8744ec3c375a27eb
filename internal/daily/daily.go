// Package daily picks a deterministic "word of the day" from the pick-list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Picker returns the same answer for every call on the same UTC day.
type Picker struct {
	answers []string
	salt    string
	now     func() time.Time
}

// NewPicker builds a daily picker. now defaults to time.Now.
func NewPicker(answers []string, salt string, now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{answers: answers, salt: salt, now: now}
}

// Pick implements game.Picker.
func (p *Picker) Pick() string {
	w, _ := p.Today()
	return w
}

// Today returns today's answer and its date key.
func (p *Picker) Today() (word, date string) {
	t := p.now()
	date = DateKey(t)
	if len(p.answers) == 0 {
		return "", date
	}
	return p.answers[WordIndex(t, p.salt, len(p.answers))], date
}
