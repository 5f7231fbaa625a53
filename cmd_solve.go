// cmd_solve.go
//
// solve simulates one game against a known, random, or daily secret.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/oracle"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		random bool
		daily  bool
		salt   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "solve [secret]",
		Short: "Simulate a game against a secret word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}

			var secret string
			switch {
			case len(args) == 1:
				secret = words.Normalize(args[0])
			case daily:
				secret, err = oracle.Daily{Date: time.Now(), Salt: salt}.Choose(s.List())
			case random:
				secret, err = a.chooser().Choose(s.List())
			default:
				return errors.New("give a secret word, --random or --daily")
			}
			if err != nil {
				return err
			}

			out, err := s.Simulate(cmd.Context(), secret)
			if err != nil {
				return err
			}
			if format == "text" {
				fmt.Fprintf(cmd.OutOrStdout(), "secret %s\n", secret)
				printOutcome(cmd.OutOrStdout(), out)
				return nil
			}
			return bench.Write(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "pick the secret uniformly at random (WORDLE_SEED makes it reproducible)")
	cmd.Flags().BoolVar(&daily, "daily", false, "use today's word")
	cmd.Flags().StringVar(&salt, "salt", getEnv("DAILY_SALT", "wordle"), "salt for the daily word")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

// chooser returns a uniform chooser on the run's seed.
func (a *app) chooser() *oracle.Uniform {
	return oracle.NewUniform(a.seed())
}

func printOutcome(w io.Writer, out solver.Outcome) {
	for i, t := range out.History {
		fmt.Fprintf(w, "%d. %s  %s  %d left\n", i+1, t.Guess, t.Pattern, t.Remaining)
	}
	switch out.Reason {
	case solver.ReasonSolved:
		fmt.Fprintf(w, "solved in %d\n", out.Attempts)
	case solver.ReasonAttemptsExhausted:
		fmt.Fprintf(w, "failed: not solved in %d guesses\n", out.Attempts)
	case solver.ReasonContradictory:
		fmt.Fprintf(w, "failed: %v\n", solver.ErrContradictoryFeedback)
	}
}
