// internal/config/config.go
//
// Runtime configuration from environment variables.
// main loads a .env file first (godotenv), then Load reads the environment;
// CLI flags override individual fields afterwards.

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds solver settings.
type Config struct {
	AnswersFile string `json:"answersFile,omitempty" yaml:"answers_file,omitempty"`
	AllowedFile string `json:"allowedFile,omitempty" yaml:"allowed_file,omitempty"`
	WordLength  int    `json:"wordLength" yaml:"word_length"`
	MaxAttempts int    `json:"maxAttempts" yaml:"max_attempts"`
	Opener      string `json:"opener,omitempty" yaml:"opener,omitempty"`
	Seed        uint64 `json:"seed" yaml:"seed"`
	// SeedSet reports whether WORDLE_SEED was given; otherwise runs are not reproducible.
	SeedSet   bool   `json:"-" yaml:"-"`
	Strategy  string `json:"strategy" yaml:"strategy"`
	Workers   int    `json:"workers" yaml:"workers"`
	ResultsDB string `json:"resultsDb,omitempty" yaml:"results_db,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WordLength:  words.DefaultLength,
		MaxAttempts: solver.DefaultMaxAttempts,
		Strategy:    entropy.StrategyEntropy,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// Load reads the environment over the defaults and validates the result.
func Load() (Config, error) {
	c := Default()
	c.AnswersFile = getEnv("WORDS_ANSWERS_FILE", "")
	c.AllowedFile = getEnv("WORDS_ALLOWED_FILE", "")
	c.Opener = strings.ToUpper(getEnv("WORDLE_OPENER", ""))
	c.Strategy = getEnv("WORDLE_STRATEGY", c.Strategy)
	c.ResultsDB = getEnv("WORDLE_RESULTS_DB", "")

	var err error
	if c.WordLength, err = envInt("WORDLE_WORD_LENGTH", c.WordLength); err != nil {
		return Config{}, err
	}
	if c.MaxAttempts, err = envInt("WORDLE_MAX_ATTEMPTS", c.MaxAttempts); err != nil {
		return Config{}, err
	}
	if c.Workers, err = envInt("WORDLE_WORKERS", c.Workers); err != nil {
		return Config{}, err
	}
	if v := getEnv("WORDLE_SEED", ""); v != "" {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: WORDLE_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.SeedSet = true
	}
	return c, c.Validate()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.WordLength < 1 || c.WordLength > words.MaxLength {
		return fmt.Errorf("%w: word length %d outside 1..%d", ErrInvalid, c.WordLength, words.MaxLength)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalid, c.MaxAttempts)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if c.Opener != "" && len(c.Opener) != c.WordLength {
		return fmt.Errorf("%w: opener %q is not %d letters", ErrInvalid, c.Opener, c.WordLength)
	}
	if _, err := entropy.New(c.Strategy, nil, c.Seed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, k, v)
	}
	return n, nil
}
