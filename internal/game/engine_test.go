package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   string
	}{
		{"exact", "CRANE", "CRANE", "GGGGG"},
		{"nothing shared", "CRANE", "BUILT", "_____"},
		{"shifted and exact", "CRANE", "TRACE", "YGG_G"},
		{"repeated guess letter", "LLAMA", "ALLOY", "YGY__"},
		{"second duplicate misses", "SPEED", "ABIDE", "__Y_Y"},
		{"single secret letter", "EERIE", "THOSE", "____G"},
		{"both duplicates credited", "ALLEY", "LOYAL", "YYY_Y"},
		{"all present", "LEAST", "SLATE", "YYGYY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Score(tt.guess, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestScore_Errors(t *testing.T) {
	_, err := Score("CRANES", "TRACE")
	assert.ErrorIs(t, err, ErrInvalidGuessLength)

	_, err = Score("", "")
	assert.ErrorIs(t, err, ErrInvalidGuessLength)

	_, err = Score("CR4NE", "TRACE")
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

// TestScore_DuplicateLetterLaw checks that non-miss marks for a letter never
// exceed that letter's count in the secret.
func TestScore_DuplicateLetterLaw(t *testing.T) {
	pool := []string{"ALLOY", "LLAMA", "EERIE", "SPEED", "ABIDE", "MAMMA", "GEESE", "TRACE", "CRANE", "LEVEL", "EMCEE"}
	for _, g := range pool {
		for _, s := range pool {
			p, err := Score(g, s)
			require.NoError(t, err)
			credited := map[byte]int{}
			for i, m := range p {
				if m != MarkMiss {
					credited[g[i]]++
				}
				if m == MarkHit {
					assert.Equal(t, s[i], g[i], "%s vs %s: hit at %d", g, s, i)
				}
			}
			for letter, n := range credited {
				assert.LessOrEqual(t, n, strings.Count(s, string(letter)), "%s vs %s letter %c", g, s, letter)
			}
		}
	}
}

func TestScoreCodeMatchesPattern(t *testing.T) {
	p, err := Score("LLAMA", "ALLOY")
	require.NoError(t, err)
	assert.Equal(t, p.Code(), ScoreCode("LLAMA", "ALLOY"))
	assert.Equal(t, SolvedCode(5), ScoreCode("ALLOY", "ALLOY"))
}

func BenchmarkScoreCode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ScoreCode("LLAMA", "ALLOY")
	}
}

func TestCheckGuess(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		want  string
		err   error
	}{
		{"normalized", " crane ", "CRANE", nil},
		{"too long", "CRANES", "", ErrInvalidGuessLength},
		{"too short", "CRAN", "", ErrInvalidGuessLength},
		{"not letters", "CR-NE", "", ErrInvalidLetter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckGuess(tt.guess, 5)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
