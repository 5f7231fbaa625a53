// Package entropy ranks candidate guesses by how well they split the
// remaining candidate set.
//
// Every strategy implements Scorer. The information strategies partition the
// candidates by the feedback pattern each would produce against the guess,
// then reduce the partition sizes to a single number where larger is better.
// The random baselines ignore the partitions and rank by a seeded draw.
package entropy

import (
	"fmt"
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Scorer rates a guess against the current candidate set. Larger is better.
// A guess that is not L letters A–Z is an error.
type Scorer interface {
	Name() string
	Score(guess string, c *game.CandidateSet) (float64, error)
}

// Strategy names accepted by New.
const (
	StrategyEntropy      = "entropy"
	StrategyPartitions   = "partitions"
	StrategyExpectedSize = "expected-size"

	StrategyRandomUniform    = "random-uniform"
	StrategyRandomConsistent = "random-consistent"
)

// Strategies lists every name New accepts.
var Strategies = []string{
	StrategyEntropy, StrategyPartitions, StrategyExpectedSize,
	StrategyRandomUniform, StrategyRandomConsistent,
}

// New returns the scorer registered under name. table may be nil; seed drives
// the random baselines and is ignored by the others.
func New(name string, table *Table, seed uint64) (Scorer, error) {
	switch name {
	case "", StrategyEntropy:
		return Entropy{Table: table}, nil
	case StrategyPartitions:
		return Partitions{Table: table}, nil
	case StrategyExpectedSize:
		return ExpectedSize{Table: table}, nil
	case StrategyRandomUniform:
		return RandomUniform{Seed: seed}, nil
	case StrategyRandomConsistent:
		return RandomConsistent{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Entropy is the expected information gain of a guess in bits:
// −Σ p_k·log2(p_k) over the non-empty feedback partitions.
type Entropy struct {
	Table *Table
}

func (Entropy) Name() string { return StrategyEntropy }

// Score returns a value in [0, log2(N)]. N ≤ 1 scores 0.
func (e Entropy) Score(guess string, c *game.CandidateSet) (float64, error) {
	sizes, total, err := Partition(e.Table, guess, c)
	if err != nil {
		return 0, err
	}
	return entropyOf(sizes, total), nil
}

// entropyOf computes log2(N) − (1/N)·Σ n_k·log2(n_k), clamped to its bounds.
func entropyOf(sizes []int, total int) float64 {
	if total <= 1 {
		return 0
	}
	n := float64(total)
	var s float64
	for _, k := range sizes {
		if k > 1 {
			f := float64(k)
			s += f * math.Log2(f)
		}
	}
	h := math.Log2(n) - s/n
	switch {
	case h < 0:
		return 0
	case h > math.Log2(n):
		return math.Log2(n)
	}
	return h
}

// Partitions scores a guess by the number of distinct feedback patterns it
// can produce.
type Partitions struct {
	Table *Table
}

func (Partitions) Name() string { return StrategyPartitions }

func (p Partitions) Score(guess string, c *game.CandidateSet) (float64, error) {
	sizes, total, err := Partition(p.Table, guess, c)
	if err != nil || total <= 1 {
		return 0, err
	}
	return float64(len(sizes)), nil
}

// ExpectedSize scores a guess by the negated expected number of candidates
// left after it: −Σ n_k²/N.
type ExpectedSize struct {
	Table *Table
}

func (ExpectedSize) Name() string { return StrategyExpectedSize }

func (e ExpectedSize) Score(guess string, c *game.CandidateSet) (float64, error) {
	sizes, total, err := Partition(e.Table, guess, c)
	if err != nil || total == 0 {
		return 0, err
	}
	var s float64
	for _, k := range sizes {
		s += float64(k) * float64(k)
	}
	return -s / float64(total), nil
}

// denseLimit is the largest code space counted with a slice instead of a map.
const denseLimit = 1 << 12

// Partition groups the candidates by the pattern guess produces against each
// and returns the non-empty group sizes and the total candidate count.
// table may be nil; it is only consulted for allowed guesses.
// guess is normalized; anything but L letters A–Z is rejected.
func Partition(table *Table, guess string, c *game.CandidateSet) ([]int, int, error) {
	list := c.List()
	guess, err := game.CheckGuess(guess, list.Length())
	if err != nil {
		return nil, 0, err
	}
	code := func(answer int) uint32 { return game.ScoreCode(guess, list.Answer(answer)) }
	if table != nil && table.list == list {
		if gi, ok := list.GuessIndex(guess); ok {
			code = func(answer int) uint32 { return table.Code(gi, answer) }
		}
	}

	idx := c.Indices()
	if np := game.NumPatterns(list.Length()); np <= denseLimit {
		counts := make([]int, np)
		for _, a := range idx {
			counts[code(a)]++
		}
		sizes := make([]int, 0, len(idx))
		for _, k := range counts {
			if k > 0 {
				sizes = append(sizes, k)
			}
		}
		return sizes, len(idx), nil
	}

	counts := make(map[uint32]int)
	for _, a := range idx {
		counts[code(a)]++
	}
	sizes := make([]int, 0, len(counts))
	for _, k := range counts {
		sizes = append(sizes, k)
	}
	return sizes, len(idx), nil
}
