// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Parse the solution bank and allowed-guess lists (one word per line or CSV, first column).
//   - Validate word length, alphabet, emptiness, and the answers ⊆ allowed invariant.
//   - Expose an immutable List that is safe for unsynchronized concurrent reads.
//
// Word Lists:
//   - "answers": the solution bank, the only words a secret may be drawn from.
//   - "allowed": valid guesses (must contain every answer).
//
// Words are normalized to uppercase A–Z. Blank lines and lines starting with '#'
// are ignored; duplicates inside one list collapse to a single entry.

package words

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultLength is the classic Wordle word length.
	DefaultLength = 5
	// MaxLength bounds L so pattern codes fit the partition tables.
	MaxLength = 10
)

// ErrMalformedWordList is returned for any list that cannot start a session.
var ErrMalformedWordList = errors.New("malformed word list")

// List is an immutable pair of word lists sharing one word length.
type List struct {
	length      int
	answers     []string
	allowed     []string
	answerIdx   map[string]int
	allowedIdx  map[string]int
	fingerprint string
}

// New validates answers and allowed and builds a List.
// Both inputs are normalized; the caller's slices are not retained.
func New(answers, allowed []string, length int) (*List, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("%w: word length %d outside 1..%d", ErrMalformedWordList, length, MaxLength)
	}
	ans, err := normalizeAll("answers", answers, length)
	if err != nil {
		return nil, err
	}
	all, err := normalizeAll("allowed", allowed, length)
	if err != nil {
		return nil, err
	}

	l := &List{
		length:     length,
		answers:    ans,
		allowed:    all,
		answerIdx:  indexOf(ans),
		allowedIdx: indexOf(all),
	}
	for _, w := range l.answers {
		if _, ok := l.allowedIdx[w]; !ok {
			return nil, fmt.Errorf("%w: answer %q missing from allowed list", ErrMalformedWordList, w)
		}
	}
	l.fingerprint = fingerprint(l)
	return l, nil
}

// Read parses both lists from readers and builds a List.
func Read(answers, allowed io.Reader, length int) (*List, error) {
	ans, err := readWords("answers", answers)
	if err != nil {
		return nil, err
	}
	all, err := readWords("allowed", allowed)
	if err != nil {
		return nil, err
	}
	return New(ans, all, length)
}

// Normalize trims and uppercases a word. It does not validate.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// Length reports the word length L shared by every word in the list.
func (l *List) Length() int { return l.length }

// NumAnswers reports the size of the solution bank.
func (l *List) NumAnswers() int { return len(l.answers) }

// NumAllowed reports the number of allowed guesses.
func (l *List) NumAllowed() int { return len(l.allowed) }

// Answer returns the i-th solution in lexicographic order.
func (l *List) Answer(i int) string { return l.answers[i] }

// Guess returns the i-th allowed guess in lexicographic order.
func (l *List) Guess(i int) string { return l.allowed[i] }

// Answers returns a copy of the solution bank.
func (l *List) Answers() []string { return slices.Clone(l.answers) }

// Allowed returns a copy of the allowed-guess list.
func (l *List) Allowed() []string { return slices.Clone(l.allowed) }

// AnswerIndex returns the position of w in the solution bank.
func (l *List) AnswerIndex(w string) (int, bool) {
	i, ok := l.answerIdx[Normalize(w)]
	return i, ok
}

// GuessIndex returns the position of w in the allowed list.
func (l *List) GuessIndex(w string) (int, bool) {
	i, ok := l.allowedIdx[Normalize(w)]
	return i, ok
}

// IsAnswer reports whether w is in the solution bank.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answerIdx[Normalize(w)]
	return ok
}

// IsAllowed reports whether w is a valid guess.
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedIdx[Normalize(w)]
	return ok
}

// Fingerprint is a stable blake2b digest of the length and both lists.
// Benchmark reports carry it so results can be tied to their dataset.
func (l *List) Fingerprint() string { return l.fingerprint }

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

// readWords reads one word per record. Records may be plain lines or CSV rows;
// only the first column is used.
func readWords(name string, r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedWordList, name, err)
		}
		if len(rec) == 0 {
			continue
		}
		if w := strings.TrimSpace(rec[0]); w != "" {
			out = append(out, w)
		}
	}
	return out, nil
}

// normalizeAll uppercases, validates, deduplicates, and sorts a list.
func normalizeAll(name string, list []string, length int) ([]string, error) {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for i, raw := range list {
		w := Normalize(raw)
		if len(w) != length {
			return nil, fmt.Errorf("%w: %s entry %d %q has length %d, want %d",
				ErrMalformedWordList, name, i+1, raw, len(w), length)
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("%w: %s entry %d %q is not A–Z", ErrMalformedWordList, name, i+1, raw)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s list is empty", ErrMalformedWordList, name)
	}
	slices.Sort(out)
	return out, nil
}

// indexOf maps each word to its position.
func indexOf(list []string) map[string]int {
	m := make(map[string]int, len(list))
	for i, w := range list {
		m[w] = i
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func fingerprint(l *List) string {
	h, _ := blake2b.New256(nil)
	_, _ = io.WriteString(h, strconv.Itoa(l.length))
	for _, part := range [][]string{l.answers, l.allowed} {
		_, _ = io.WriteString(h, "\x00")
		_, _ = io.WriteString(h, strings.Join(part, "\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
