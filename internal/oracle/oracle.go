// internal/oracle/oracle.go
//
// Secret choosers for simulated games.
// Provides:
//   - Uniform: seeded uniform choice over the solution bank (reproducible runs).
//   - Daily: deterministic word-of-the-day from HMAC(salt, YYYY-MM-DD/fingerprint).

package oracle

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrEmptyBank is returned when there is nothing to choose from.
var ErrEmptyBank = errors.New("oracle: empty solution bank")

// Chooser picks a secret from a word list's solution bank.
type Chooser interface {
	Name() string
	Choose(list *words.List) (string, error)
}

// Uniform chooses answers uniformly at random from a seeded PCG source.
// It is safe for concurrent use.
type Uniform struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniform returns a Uniform chooser; equal seeds give equal sequences.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (*Uniform) Name() string { return "uniform" }

func (u *Uniform) Choose(list *words.List) (string, error) {
	n := list.NumAnswers()
	if n == 0 {
		return "", ErrEmptyBank
	}
	u.mu.Lock()
	i := u.rng.IntN(n)
	u.mu.Unlock()
	return list.Answer(i), nil
}

// Sample draws n distinct answers, or every answer if n exceeds the bank.
// Order follows the draw so equal seeds give equal samples.
func (u *Uniform) Sample(list *words.List, n int) []string {
	total := list.NumAnswers()
	if n <= 0 || n > total {
		n = total
	}
	u.mu.Lock()
	perm := u.rng.Perm(total)
	u.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		out[i] = list.Answer(perm[i])
	}
	return out
}

// Daily picks one answer per UTC calendar day. The pick is an HMAC keyed by
// Salt over the date and the list fingerprint, so each word list has its own
// schedule.
type Daily struct {
	Date time.Time
	Salt string
}

func (Daily) Name() string { return "daily" }

func (d Daily) Choose(list *words.List) (string, error) {
	i, err := d.Index(list)
	if err != nil {
		return "", err
	}
	return list.Answer(i), nil
}

// Index returns the solution-bank index Choose picks.
func (d Daily) Index(list *words.List) (int, error) {
	n := list.NumAnswers()
	if n == 0 {
		return 0, ErrEmptyBank
	}
	mac := hmac.New(sha256.New, []byte(d.Salt))
	io.WriteString(mac, DateKey(d.Date)+"/"+list.Fingerprint())
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n)), nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
