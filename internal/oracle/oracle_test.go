package oracle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func testList(t *testing.T) *words.List {
	t.Helper()
	answers := []string{"CRANE", "SLATE", "TRACE", "ALLOY", "CRATE", "GRACE"}
	l, err := words.New(answers, answers, 5)
	require.NoError(t, err)
	return l
}

func TestUniform_Reproducible(t *testing.T) {
	l := testList(t)
	a, b := NewUniform(42), NewUniform(42)
	for i := 0; i < 20; i++ {
		wa, err := a.Choose(l)
		require.NoError(t, err)
		wb, err := b.Choose(l)
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
		assert.True(t, l.IsAnswer(wa))
	}
	assert.Equal(t, "uniform", a.Name())
}

func TestUniform_Sample(t *testing.T) {
	l := testList(t)

	s := NewUniform(7).Sample(l, 4)
	assert.Len(t, s, 4)
	seen := map[string]bool{}
	for _, w := range s {
		assert.False(t, seen[w], "duplicate %s", w)
		seen[w] = true
	}
	assert.Equal(t, s, NewUniform(7).Sample(l, 4))

	all := NewUniform(1).Sample(l, 100)
	assert.ElementsMatch(t, l.Answers(), all)
	assert.Len(t, NewUniform(1).Sample(l, 0), l.NumAnswers())
}

func TestDaily(t *testing.T) {
	l := testList(t)
	day := time.Date(2024, 3, 9, 23, 0, 0, 0, time.FixedZone("x", -5*3600))
	assert.Equal(t, "2024-03-10", DateKey(day))

	d := Daily{Date: day, Salt: "salt"}
	w1, err := d.Choose(l)
	require.NoError(t, err)
	w2, err := Daily{Date: day.Add(30 * time.Minute), Salt: "salt"}.Choose(l)
	require.NoError(t, err)
	assert.Equal(t, w1, w2, "same UTC day")

	i, err := d.Index(l)
	require.NoError(t, err)
	assert.Equal(t, l.Answer(i), w1)
	assert.Equal(t, "daily", d.Name())
}

func TestDaily_Index(t *testing.T) {
	l := testList(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	differ := 0
	for i := 0; i < 60; i++ {
		date := start.AddDate(0, 0, i)
		a, err := Daily{Date: date, Salt: "s"}.Index(l)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, l.NumAnswers())

		b, err := Daily{Date: date, Salt: "other"}.Index(l)
		require.NoError(t, err)
		if a != b {
			differ++
		}
	}
	assert.Positive(t, differ, "salt has no effect")
}

func TestDaily_DependsOnList(t *testing.T) {
	a := testList(t)
	b, err := words.New(a.Answers(), append(a.Answers(), "SOARE"), 5)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	differ := 0
	for i := 0; i < 60; i++ {
		d := Daily{Date: start.AddDate(0, 0, i), Salt: "s"}
		ia, err := d.Index(a)
		require.NoError(t, err)
		ib, err := d.Index(b)
		require.NoError(t, err)
		if ia != ib {
			differ++
		}
	}
	assert.Positive(t, differ)
}
