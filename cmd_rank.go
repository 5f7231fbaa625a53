// cmd_rank.go
//
// rank lists the best next guesses after an optional history of
// GUESS=PATTERN pairs, e.g. "wordle-solver rank CRANE=YG__G".

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// rankReport is the structured output of rank.
type rankReport struct {
	Strategy   string           `json:"strategy" yaml:"strategy"`
	Candidates int              `json:"candidates" yaml:"candidates"`
	Top        []entropy.Ranked `json:"top" yaml:"top"`
}

func newRankCmd(a *app) *cobra.Command {
	var (
		top    int
		format string
	)
	cmd := &cobra.Command{
		Use:   "rank [GUESS=PATTERN ...]",
		Short: "Rank guesses for the candidates left after a history",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := rank(cmd.Context(), s, args, top)
			if err != nil {
				return err
			}
			if format == "text" {
				printRank(cmd.OutOrStdout(), rep)
				return nil
			}
			return bench.Write(cmd.OutOrStdout(), format, rep)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of guesses to list (0 for all)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func rank(ctx context.Context, s *solver.Solver, history []string, top int) (rankReport, error) {
	c := game.NewCandidateSet(s.List())
	for _, h := range history {
		guess, text, ok := strings.Cut(h, "=")
		if !ok {
			return rankReport{}, fmt.Errorf("history entry %q: want GUESS=PATTERN", h)
		}
		p, err := game.ParsePattern(text, s.List().Length())
		if err != nil {
			return rankReport{}, fmt.Errorf("history entry %q: %w", h, err)
		}
		if !s.List().IsAllowed(guess) {
			return rankReport{}, fmt.Errorf("history entry %q: %w", h, solver.ErrNotAllowed)
		}
		if c, err = game.Filter(c, guess, p); err != nil {
			return rankReport{}, fmt.Errorf("history entry %q: %w", h, err)
		}
		if c.Empty() {
			return rankReport{}, solver.ErrContradictoryFeedback
		}
	}

	ranked, err := s.Rank(ctx, c, top)
	if err != nil {
		return rankReport{}, err
	}
	return rankReport{Strategy: s.Strategy(), Candidates: c.Len(), Top: ranked}, nil
}

func printRank(w io.Writer, rep rankReport) {
	fmt.Fprintf(w, "%d candidates, strategy %s\n", rep.Candidates, rep.Strategy)
	for i, r := range rep.Top {
		mark := ""
		if r.Candidate {
			mark = " *"
		}
		fmt.Fprintf(w, "%3d. %s  %.4f%s\n", i+1, r.Guess, r.Score, mark)
	}
}
