package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func testList(t *testing.T) *words.List {
	t.Helper()
	answers := []string{"CRANE", "SLATE", "TRACE", "ALLOY", "CRATE", "GRACE"}
	allowed := append([]string{"LLAMA", "SOARE", "ROATE"}, answers...)
	l, err := words.New(answers, allowed, 5)
	require.NoError(t, err)
	return l
}

func TestNewCandidateSet(t *testing.T) {
	l := testList(t)
	c := NewCandidateSet(l)
	assert.Equal(t, 6, c.Len())
	assert.False(t, c.Empty())
	assert.True(t, c.Contains("crane"))
	assert.False(t, c.Contains("LLAMA"))
	assert.Equal(t, []string{"ALLOY", "CRANE", "CRATE", "GRACE", "SLATE", "TRACE"}, c.Words())
}

func TestCandidatesOf(t *testing.T) {
	l := testList(t)
	c, err := CandidatesOf(l, "TRACE", "SLATE")
	require.NoError(t, err)
	assert.Equal(t, []string{"SLATE", "TRACE"}, c.Words())
	first, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, "SLATE", first)

	_, err = CandidatesOf(l, "LLAMA")
	assert.Error(t, err)
}

func TestCandidateSet_Key(t *testing.T) {
	l := testList(t)
	full := NewCandidateSet(l)
	a, err := CandidatesOf(l, "TRACE", "CRANE")
	require.NoError(t, err)
	b, err := CandidatesOf(l, "CRANE", "TRACE")
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), a.Key())
	assert.NotEqual(t, a.Key(), full.Key())

	p, err := Score("CRANE", "TRACE")
	require.NoError(t, err)
	next, err := Filter(full, "CRANE", p)
	require.NoError(t, err)
	assert.NotEqual(t, full.Key(), next.Key())
}

func TestFilter(t *testing.T) {
	l := testList(t)
	c := NewCandidateSet(l)

	p, err := Score("CRANE", "TRACE")
	require.NoError(t, err)
	out, err := Filter(c, "CRANE", p)
	require.NoError(t, err)
	assert.Equal(t, []string{"GRACE", "TRACE"}, out.Words())
	assert.Equal(t, 6, c.Len(), "input set is not modified")
}

func TestFilter_GuessOutsideCandidates(t *testing.T) {
	l := testList(t)
	c := NewCandidateSet(l)

	p, err := Score("LLAMA", "ALLOY")
	require.NoError(t, err)
	out, err := Filter(c, "LLAMA", p)
	require.NoError(t, err)
	assert.True(t, out.Contains("ALLOY"))
	assert.LessOrEqual(t, out.Len(), c.Len())
}

// TestFilter_SelfConsistent checks that a secret always survives the feedback
// its own guesses produce against it.
func TestFilter_SelfConsistent(t *testing.T) {
	l := testList(t)
	for _, secret := range l.Answers() {
		single, err := CandidatesOf(l, secret)
		require.NoError(t, err)
		for _, guess := range l.Allowed() {
			p, err := Score(guess, secret)
			require.NoError(t, err)
			out, err := Filter(single, guess, p)
			require.NoError(t, err)
			assert.True(t, out.Contains(secret), "%s eliminated by %s", secret, guess)
		}
	}
}

func TestFilter_Contradiction(t *testing.T) {
	l := testList(t)
	c, err := CandidatesOf(l, "CRANE")
	require.NoError(t, err)

	out, err := Filter(c, "CRANE", Pattern{MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkMiss})
	require.NoError(t, err)
	assert.True(t, out.Empty())
}

func TestFilter_Errors(t *testing.T) {
	c := NewCandidateSet(testList(t))

	_, err := Filter(c, "CRAN", Pattern{MarkHit, MarkHit, MarkHit, MarkHit})
	assert.ErrorIs(t, err, ErrInvalidGuessLength)

	_, err = Filter(c, "CRANE", Pattern{MarkHit})
	assert.ErrorIs(t, err, ErrInvalidFeedbackLength)

	_, err = Filter(c, "CRANE", Pattern{3, MarkMiss, MarkMiss, MarkMiss, MarkMiss})
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = Filter(c, "CR4NE", make(Pattern, 5))
	assert.ErrorIs(t, err, ErrInvalidLetter)
}
