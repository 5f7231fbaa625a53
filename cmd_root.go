// cmd_root.go
//
// Root command, shared flags, and solver construction.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// app carries the configuration shared by every command.
type app struct {
	cfg   config.Config
	table bool
	log   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: log.Logger}
	var envErr error
	a.cfg, envErr = config.Load()

	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Entropy-maximizing Wordle solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			a.log = log.Logger
			return a.cfg.Validate()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfg.AnswersFile, "answers", a.cfg.AnswersFile, "solution bank file (default: embedded list)")
	f.StringVar(&a.cfg.AllowedFile, "allowed", a.cfg.AllowedFile, "allowed guesses file (default: embedded list)")
	f.IntVar(&a.cfg.WordLength, "length", a.cfg.WordLength, "word length")
	f.IntVar(&a.cfg.MaxAttempts, "max-attempts", a.cfg.MaxAttempts, "guesses allowed per game")
	f.StringVar(&a.cfg.Opener, "opener", a.cfg.Opener, "fixed first guess")
	f.StringVar(&a.cfg.Strategy, "strategy", a.cfg.Strategy, "guess scoring: "+strings.Join(entropy.Strategies, ", "))
	f.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "scoring goroutines")
	f.BoolVar(&a.table, "table", false, "precompute the pattern table before solving")

	root.AddCommand(
		newSolveCmd(a),
		newPlayCmd(a),
		newRankCmd(a),
		newBenchCmd(a),
	)
	return root
}

// loadWords reads the configured word lists.
func (a *app) loadWords() (*words.List, error) {
	l, err := words.Load(a.cfg.AnswersFile, a.cfg.AllowedFile, a.cfg.WordLength)
	if err != nil {
		return nil, err
	}
	ans, all := l.Stats()
	a.log.Debug().
		Int("answers", ans).
		Int("allowed", all).
		Str("fingerprint", l.Fingerprint()).
		Msg("word lists loaded")
	return l, nil
}

// seed returns WORDLE_SEED, or a clock seed that stays fixed for the rest of
// the command so the chooser and the random strategies share it.
func (a *app) seed() uint64 {
	if !a.cfg.SeedSet {
		a.cfg.Seed, a.cfg.SeedSet = uint64(time.Now().UnixNano()), true
		a.log.Debug().Uint64("seed", a.cfg.Seed).Msg("seeded from clock")
	}
	return a.cfg.Seed
}

// newSolver builds a solver from the configuration. extra options are applied last.
func (a *app) newSolver(ctx context.Context, extra ...solver.Option) (*solver.Solver, error) {
	l, err := a.loadWords()
	if err != nil {
		return nil, err
	}

	var table *entropy.Table
	if a.table {
		if table, err = entropy.BuildTable(ctx, l, a.cfg.Workers); err != nil {
			return nil, fmt.Errorf("build pattern table: %w", err)
		}
		a.log.Debug().Int("pairs", l.NumAllowed()*l.NumAnswers()).Msg("pattern table built")
	}
	scorer, err := entropy.New(a.cfg.Strategy, table, a.seed())
	if err != nil {
		return nil, err
	}
	ranker := entropy.NewRanker(scorer, entropy.WithWorkers(a.cfg.Workers), entropy.WithLogger(a.log))

	opts := []solver.Option{
		solver.WithMaxAttempts(a.cfg.MaxAttempts),
		solver.WithOpenerCache(store.NewMemoryStore()),
		solver.WithLogger(a.log),
	}
	if a.cfg.Opener != "" {
		opts = append(opts, solver.WithOpener(a.cfg.Opener))
	}
	return solver.New(l, ranker, append(opts, extra...)...)
}
