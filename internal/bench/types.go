// internal/bench/types.go
//
// Records produced by a benchmark run.

package bench

import (
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// GameResult is one simulated game.
type GameResult struct {
	Answer   string        `json:"answer" yaml:"answer"`
	Won      bool          `json:"won" yaml:"won"`
	Guesses  []string      `json:"guesses" yaml:"guesses"`
	Duration time.Duration `json:"durationNs" yaml:"duration_ns"`
	Reason   solver.Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NumGuesses returns how many guesses the game used.
func (g GameResult) NumGuesses() int { return len(g.Guesses) }

// Batch is a full benchmark run: every game played with one solver configuration.
type Batch struct {
	ID          string         `json:"id" yaml:"id"`
	Oracle      string         `json:"oracle" yaml:"oracle"`
	Strategy    string         `json:"strategy" yaml:"strategy"`
	Fingerprint string         `json:"fingerprint" yaml:"fingerprint"`
	StartedAt   time.Time      `json:"startedAt" yaml:"started_at"`
	Settings    map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
	Games       []GameResult   `json:"games" yaml:"games"`
}

// Metrics are the aggregate statistics of a Batch. Guess statistics cover wins only.
type Metrics struct {
	TotalGames        int         `json:"totalGames" yaml:"total_games"`
	WinRate           float64     `json:"winRate" yaml:"win_rate"`
	AverageDurationMs float64     `json:"averageDurationMs" yaml:"average_duration_ms"`
	MeanGuesses       float64     `json:"meanGuesses" yaml:"mean_guesses"`
	MedianGuesses     float64     `json:"medianGuesses" yaml:"median_guesses"`
	StdDevGuesses     float64     `json:"stdDevGuesses" yaml:"std_dev_guesses"`
	GuessDistribution map[int]int `json:"guessDistribution" yaml:"guess_distribution"`
	WorstCaseGuesses  int         `json:"worstCaseGuesses" yaml:"worst_case_guesses"`
	FailedWords       []string    `json:"failedWords" yaml:"failed_words"`
	FailureEntropy    float64     `json:"failureEntropy" yaml:"failure_entropy"`
}
