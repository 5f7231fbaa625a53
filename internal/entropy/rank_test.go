package entropy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func TestBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b Ranked
		want bool
	}{
		{"higher score", Ranked{Guess: "ZZZZZ", Score: 2}, Ranked{Guess: "AAAAA", Score: 1, Candidate: true}, true},
		{"lower score", Ranked{Guess: "AAAAA", Score: 1}, Ranked{Guess: "BBBBB", Score: 2}, false},
		{"tie prefers candidate", Ranked{Guess: "ZZZZZ", Score: 1, Candidate: true}, Ranked{Guess: "AAAAA", Score: 1}, true},
		{"tie then lexicographic", Ranked{Guess: "AAAAA", Score: 1}, Ranked{Guess: "BBBBB", Score: 1}, true},
		{"float noise is a tie", Ranked{Guess: "AAAAA", Score: 1}, Ranked{Guess: "BBBBB", Score: 1 + 1e-13}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Better(tt.a, tt.b))
		})
	}
}

func TestRanker_Best(t *testing.T) {
	l := testList(t)
	c := game.NewCandidateSet(l)
	r := NewRanker(Entropy{}, WithWorkers(3))

	best, err := r.Best(context.Background(), l.Allowed(), c)
	require.NoError(t, err)

	top, err := r.Top(context.Background(), l.Allowed(), c, 0)
	require.NoError(t, err)
	require.Len(t, top, l.NumAllowed())
	assert.Equal(t, best, top[0])
	for _, other := range top[1:] {
		assert.False(t, Better(other, best), "%s ranks ahead of %s", other.Guess, best.Guess)
	}
}

func TestRanker_TieBreakPrefersCandidate(t *testing.T) {
	l := testList(t)
	r := NewRanker(Entropy{}, WithWorkers(2))

	one, err := game.CandidatesOf(l, "TRACE")
	require.NoError(t, err)
	best, err := r.Best(context.Background(), l.Allowed(), one)
	require.NoError(t, err)
	assert.Equal(t, "TRACE", best.Guess)
	assert.True(t, best.Candidate)

	two, err := game.CandidatesOf(l, "GRACE", "CRATE")
	require.NoError(t, err)
	best, err = r.Best(context.Background(), l.Allowed(), two)
	require.NoError(t, err)
	assert.Equal(t, "CRATE", best.Guess)
	assert.InDelta(t, 1.0, best.Score, 1e-12)
}

func TestRanker_Top(t *testing.T) {
	l := testList(t)
	c := game.NewCandidateSet(l)
	top, err := NewRanker(Entropy{}).Top(context.Background(), l.Allowed(), c, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.False(t, Better(top[1], top[0]))
	assert.False(t, Better(top[2], top[1]))
}

func TestRanker_Errors(t *testing.T) {
	l := testList(t)
	r := NewRanker(Entropy{})

	empty, err := game.CandidatesOf(l)
	require.NoError(t, err)
	_, err = r.Best(context.Background(), l.Allowed(), empty)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = r.Best(context.Background(), nil, game.NewCandidateSet(l))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Best(ctx, l.Allowed(), game.NewCandidateSet(l))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRanker_InvalidGuess(t *testing.T) {
	l := testList(t)
	c := game.NewCandidateSet(l)
	r := NewRanker(Entropy{}, WithWorkers(2))

	_, err := r.Best(context.Background(), []string{"CRANE", "CRANES", "SLATE"}, c)
	assert.ErrorIs(t, err, game.ErrInvalidGuessLength)
	assert.ErrorContains(t, err, `"CRANES"`)

	best, err := r.Best(context.Background(), []string{"crane", "slate"}, c)
	require.NoError(t, err)
	assert.Contains(t, []string{"CRANE", "SLATE"}, best.Guess)
	assert.True(t, best.Candidate)
}
