package entropy

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func testList(t testing.TB) *words.List {
	t.Helper()
	answers := []string{"CRANE", "SLATE", "TRACE", "ALLOY", "CRATE", "GRACE"}
	allowed := append([]string{"LLAMA", "SOARE", "ROATE"}, answers...)
	l, err := words.New(answers, allowed, 5)
	require.NoError(t, err)
	return l
}

func score(t testing.TB, s Scorer, guess string, c *game.CandidateSet) float64 {
	t.Helper()
	v, err := s.Score(guess, c)
	require.NoError(t, err)
	return v
}

func TestEntropy_KnownValue(t *testing.T) {
	c := game.NewCandidateSet(testList(t))
	// CRANE splits the six answers into sizes {1,1,1,1,2}.
	want := math.Log2(6) - 2.0/6.0
	assert.InDelta(t, want, score(t, Entropy{}, "CRANE", c), 1e-12)
}

func TestEntropy_Bounds(t *testing.T) {
	l := testList(t)
	c := game.NewCandidateSet(l)
	upper := math.Log2(float64(c.Len()))
	for _, g := range l.Allowed() {
		h := score(t, Entropy{}, g, c)
		assert.GreaterOrEqual(t, h, 0.0, g)
		assert.LessOrEqual(t, h, upper, g)
	}
}

func TestEntropy_SinglePartitionScoresZero(t *testing.T) {
	c := game.NewCandidateSet(testList(t))
	assert.Equal(t, 0.0, score(t, Entropy{}, "BUMPH", c))

	one, err := game.CandidatesOf(testList(t), "TRACE")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score(t, Entropy{}, "CRANE", one))
}

func TestAlternativeScorers(t *testing.T) {
	c := game.NewCandidateSet(testList(t))
	assert.Equal(t, 5.0, score(t, Partitions{}, "CRANE", c))
	assert.InDelta(t, -(1+1+1+1+4)/6.0, score(t, ExpectedSize{}, "CRANE", c), 1e-12)
	assert.Equal(t, 1.0, score(t, Partitions{}, "BUMPH", c))
	assert.InDelta(t, -6.0, score(t, ExpectedSize{}, "BUMPH", c), 1e-12)
}

func TestScore_NormalizesGuess(t *testing.T) {
	c := game.NewCandidateSet(testList(t))
	scorers := []Scorer{
		Entropy{}, Partitions{}, ExpectedSize{},
		RandomUniform{Seed: 7}, RandomConsistent{Seed: 7},
	}
	for _, s := range scorers {
		t.Run(s.Name(), func(t *testing.T) {
			assert.Equal(t, score(t, s, "CRANE", c), score(t, s, "crane", c))
			assert.Equal(t, score(t, s, "CRANE", c), score(t, s, " Crane ", c))
		})
	}
}

func TestScore_InvalidGuess(t *testing.T) {
	c := game.NewCandidateSet(testList(t))
	scorers := []Scorer{
		Entropy{}, Partitions{}, ExpectedSize{},
		RandomUniform{}, RandomConsistent{},
	}
	for _, s := range scorers {
		t.Run(s.Name(), func(t *testing.T) {
			_, err := s.Score("CRANES", c)
			assert.ErrorIs(t, err, game.ErrInvalidGuessLength)
			_, err = s.Score("CRAN", c)
			assert.ErrorIs(t, err, game.ErrInvalidGuessLength)
			_, err = s.Score("CR4NE", c)
			assert.ErrorIs(t, err, game.ErrInvalidLetter)
		})
	}
}

func TestPartition_InvalidGuess(t *testing.T) {
	l := testList(t)
	table, err := BuildTable(context.Background(), l, 1)
	require.NoError(t, err)
	c := game.NewCandidateSet(l)

	_, _, err = Partition(table, "craness", c)
	assert.ErrorIs(t, err, game.ErrInvalidGuessLength)

	sizes, total, err := Partition(table, "soare", c)
	require.NoError(t, err)
	want, _, err := Partition(nil, "SOARE", c)
	require.NoError(t, err)
	assert.Equal(t, want, sizes)
	assert.Equal(t, 6, total)
}

func TestNew(t *testing.T) {
	for _, name := range append([]string{""}, Strategies...) {
		s, err := New(name, nil, 1)
		require.NoError(t, err)
		assert.NotEmpty(t, s.Name())
	}
	s, err := New(StrategyRandomConsistent, nil, 42)
	require.NoError(t, err)
	assert.Equal(t, RandomConsistent{Seed: 42}, s)

	_, err = New("reinforcement", nil, 0)
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	l := testList(t)
	table, err := BuildTable(context.Background(), l, 2)
	require.NoError(t, err)
	assert.Same(t, l, table.List())

	for gi := 0; gi < l.NumAllowed(); gi++ {
		for ai := 0; ai < l.NumAnswers(); ai++ {
			assert.Equal(t, game.ScoreCode(l.Guess(gi), l.Answer(ai)), table.Code(gi, ai))
		}
	}

	c := game.NewCandidateSet(l)
	for _, g := range l.Allowed() {
		assert.Equal(t, score(t, Entropy{}, g, c), score(t, Entropy{Table: table}, g, c), g)
		assert.Equal(t, score(t, Entropy{}, g, c), score(t, Entropy{Table: table}, strings.ToLower(g), c), g)
	}
}

func TestBuildTable_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildTable(ctx, testList(t), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkEntropy(b *testing.B) {
	l, err := words.LoadDefault(words.DefaultLength)
	require.NoError(b, err)
	c := game.NewCandidateSet(l)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Entropy{}.Score("SOARE", c)
	}
}
