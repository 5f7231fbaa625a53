package game

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// CandidateSet is a subset of a list's solution bank, stored as a bitset over
// answer indices. Sets are never grown: Filter always returns a subset.
type CandidateSet struct {
	list *words.List
	bits *bitset.BitSet
	key  func() uint64
}

func newSet(list *words.List, b *bitset.BitSet) *CandidateSet {
	c := &CandidateSet{list: list, bits: b}
	c.key = sync.OnceValue(c.digest)
	return c
}

// NewCandidateSet returns the full solution bank of list.
func NewCandidateSet(list *words.List) *CandidateSet {
	n := uint(list.NumAnswers())
	b := bitset.New(n)
	b.FlipRange(0, n)
	return newSet(list, b)
}

// CandidatesOf returns the set holding exactly ws, which must all be answers.
func CandidatesOf(list *words.List, ws ...string) (*CandidateSet, error) {
	b := bitset.New(uint(list.NumAnswers()))
	for _, w := range ws {
		i, ok := list.AnswerIndex(w)
		if !ok {
			return nil, fmt.Errorf("%q is not in the solution bank", w)
		}
		b.Set(uint(i))
	}
	return newSet(list, b), nil
}

// List returns the word list the set indexes into.
func (c *CandidateSet) List() *words.List { return c.list }

// Len reports the number of candidates.
func (c *CandidateSet) Len() int { return int(c.bits.Count()) }

// Empty reports whether no candidate remains.
func (c *CandidateSet) Empty() bool { return c.bits.None() }

// Contains reports whether w is still a candidate.
func (c *CandidateSet) Contains(w string) bool {
	i, ok := c.list.AnswerIndex(w)
	return ok && c.bits.Test(uint(i))
}

// ContainsIndex reports whether the answer at index i is still a candidate.
func (c *CandidateSet) ContainsIndex(i int) bool { return c.bits.Test(uint(i)) }

// Indices returns the answer indices of all candidates in ascending order.
func (c *CandidateSet) Indices() []int {
	out := make([]int, 0, c.bits.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Key is a stable digest of the set's members. Equal sets over the same list
// have equal keys.
func (c *CandidateSet) Key() uint64 { return c.key() }

func (c *CandidateSet) digest() uint64 {
	buf := make([]byte, 0, 4*c.bits.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(i))
	}
	sum := blake2b.Sum256(buf)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Words returns the candidates in lexicographic order.
func (c *CandidateSet) Words() []string {
	idx := c.Indices()
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = c.list.Answer(i)
	}
	return out
}

// First returns the lexicographically smallest candidate.
func (c *CandidateSet) First() (string, bool) {
	i, ok := c.bits.NextSet(0)
	if !ok {
		return "", false
	}
	return c.list.Answer(int(i)), true
}

// Filter returns the candidates w for which Score(guess, w) equals p.
// guess need not be a candidate, or even an answer.
func Filter(c *CandidateSet, guess string, p Pattern) (*CandidateSet, error) {
	l := c.list.Length()
	guess, err := CheckGuess(guess, l)
	if err != nil {
		return nil, err
	}
	if len(p) != l {
		return nil, fmt.Errorf("%w: got %d marks, want %d", ErrInvalidFeedbackLength, len(p), l)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	want := p.Code()
	out := bitset.New(c.bits.Len())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		if ScoreCode(guess, c.list.Answer(int(i))) == want {
			out.Set(i)
		}
	}
	return newSet(c.list, out), nil
}
