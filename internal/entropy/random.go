package entropy

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// RandomUniform is a baseline that ignores feedback entirely. Every word of
// the solution bank gets a seeded draw in [0, 1); other allowed guesses score
// -1.
//
// The draw is a function of the seed, the candidate set and the guess only, so
// a ranking is reproducible and independent of worker count and call order.
type RandomUniform struct {
	Seed uint64
}

func (RandomUniform) Name() string { return StrategyRandomUniform }

func (r RandomUniform) Score(guess string, c *game.CandidateSet) (float64, error) {
	guess, err := game.CheckGuess(guess, c.List().Length())
	if err != nil {
		return 0, err
	}
	if !c.List().IsAnswer(guess) {
		return -1, nil
	}
	return draw(r.Seed, c, guess), nil
}

// RandomConsistent draws among the remaining candidates only. Guesses that
// can no longer be the answer score -1, below every draw.
type RandomConsistent struct {
	Seed uint64
}

func (RandomConsistent) Name() string { return StrategyRandomConsistent }

func (r RandomConsistent) Score(guess string, c *game.CandidateSet) (float64, error) {
	guess, err := game.CheckGuess(guess, c.List().Length())
	if err != nil {
		return 0, err
	}
	if !c.Contains(guess) {
		return -1, nil
	}
	return draw(r.Seed, c, guess), nil
}

func draw(seed uint64, c *game.CandidateSet, guess string) float64 {
	g := blake2b.Sum256([]byte(guess))
	src := rand.NewPCG(seed^c.Key(), binary.LittleEndian.Uint64(g[:8]))
	return rand.New(src).Float64()
}

// CacheKey names what a scorer's choices depend on beyond the word list.
// Seeded scorers include their seed.
func CacheKey(s Scorer) string {
	switch v := s.(type) {
	case RandomUniform:
		return v.Name() + "@" + strconv.FormatUint(v.Seed, 10)
	case RandomConsistent:
		return v.Name() + "@" + strconv.FormatUint(v.Seed, 10)
	default:
		return s.Name()
	}
}
