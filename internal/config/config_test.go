package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "WORDLE_WORD_LENGTH", "WORDLE_MAX_ATTEMPTS",
		"WORDLE_OPENER", "WORDLE_SEED", "WORDLE_STRATEGY", "WORDLE_WORKERS", "WORDLE_RESULTS_DB",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, c.WordLength)
	assert.Equal(t, 6, c.MaxAttempts)
	assert.Equal(t, "entropy", c.Strategy)
	assert.Positive(t, c.Workers)
	assert.False(t, c.SeedSet)
	assert.Empty(t, c.Opener)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDS_ANSWERS_FILE", "a.txt")
	t.Setenv("WORDLE_MAX_ATTEMPTS", "8")
	t.Setenv("WORDLE_OPENER", "soare")
	t.Setenv("WORDLE_SEED", "42")
	t.Setenv("WORDLE_STRATEGY", "partitions")
	t.Setenv("WORDLE_WORKERS", "2")
	t.Setenv("WORDLE_RESULTS_DB", "./data/results.db")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "a.txt", c.AnswersFile)
	assert.Equal(t, 8, c.MaxAttempts)
	assert.Equal(t, "SOARE", c.Opener)
	assert.Equal(t, uint64(42), c.Seed)
	assert.True(t, c.SeedSet)
	assert.Equal(t, "partitions", c.Strategy)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, "./data/results.db", c.ResultsDB)
}

func TestLoad_RandomStrategies(t *testing.T) {
	for _, name := range []string{"random-uniform", "random-consistent"} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("WORDLE_STRATEGY", name)
			t.Setenv("WORDLE_SEED", "7")
			c, err := Load()
			require.NoError(t, err)
			assert.Equal(t, name, c.Strategy)
			assert.Equal(t, uint64(7), c.Seed)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"length not a number", "WORDLE_WORD_LENGTH", "five"},
		{"length too long", "WORDLE_WORD_LENGTH", "11"},
		{"zero attempts", "WORDLE_MAX_ATTEMPTS", "0"},
		{"bad seed", "WORDLE_SEED", "-1"},
		{"unknown strategy", "WORDLE_STRATEGY", "minimax"},
		{"opener length", "WORDLE_OPENER", "CRANES"},
		{"zero workers", "WORDLE_WORKERS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
