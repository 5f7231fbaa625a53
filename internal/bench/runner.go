// internal/bench/runner.go
//
// Runner plays many simulated games with one Solver and collects a Batch.
// Games run concurrently; the Solver's opener cache means the first guess is
// computed once per run rather than once per game.

package bench

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Runner executes benchmark batches.
type Runner struct {
	solver   *solver.Solver
	workers  int
	progress io.Writer
	oracle   string
	settings map[string]any
	log      zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds concurrent games (≤ 0 means GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithProgress draws a progress bar on w. Without it the run is silent.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) { r.progress = w }
}

// WithOracle records the name of the chooser that produced the secrets.
func WithOracle(name string) Option {
	return func(r *Runner) { r.oracle = name }
}

// WithSettings attaches a snapshot of the configuration to the batch.
func WithSettings(s map[string]any) Option {
	return func(r *Runner) { r.settings = s }
}

// WithLogger sets the run logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// NewRunner returns a Runner for s.
func NewRunner(s *solver.Solver, opts ...Option) *Runner {
	r := &Runner{
		solver:  s,
		workers: runtime.GOMAXPROCS(0),
		oracle:  "all",
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run simulates one game per secret. Results keep the order of secrets.
// Failed games are results, not errors; invalid secrets and cancellation abort the run.
func (r *Runner) Run(ctx context.Context, secrets []string) (Batch, error) {
	b := Batch{
		ID:          uuid.NewString(),
		Oracle:      r.oracle,
		Strategy:    r.solver.Strategy(),
		Fingerprint: r.solver.List().Fingerprint(),
		StartedAt:   time.Now().UTC(),
		Settings:    r.settings,
		Games:       make([]GameResult, len(secrets)),
	}
	r.log.Info().
		Str("run", b.ID).
		Str("strategy", b.Strategy).
		Int("games", len(secrets)).
		Int("workers", r.workers).
		Msg("benchmark started")

	bar := r.bar(len(secrets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, secret := range secrets {
		g.Go(func() error {
			start := time.Now()
			out, err := r.solver.Simulate(ctx, secret)
			if err != nil {
				return err
			}
			b.Games[i] = result(secret, out, time.Since(start))
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Batch{}, err
	}
	_ = bar.Finish()

	m := Compute(b)
	r.log.Info().
		Str("run", b.ID).
		Float64("win_rate", m.WinRate).
		Float64("mean_guesses", m.MeanGuesses).
		Int("failed", len(m.FailedWords)).
		Msg("benchmark complete")
	return b, nil
}

func (r *Runner) bar(n int) *progressbar.ProgressBar {
	if r.progress == nil {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func result(secret string, out solver.Outcome, d time.Duration) GameResult {
	guesses := make([]string, len(out.History))
	for i, t := range out.History {
		guesses[i] = t.Guess
	}
	return GameResult{
		Answer:   secret,
		Won:      out.Solved(),
		Guesses:  guesses,
		Duration: d,
		Reason:   out.Reason,
	}
}
