// cmd_play.go
//
// play is the interactive mode: the solver suggests a guess, the user enters
// the feedback shown by the game. A line may also name the word actually
// played, e.g. "SLATE _Y__G".

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Solve a live game by entering feedback patterns",
		Long: `For each suggestion, type the feedback using G (green), Y (yellow) and _ (grey),
for example "YG__G". Prefix the pattern with a word if you played a different guess.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSolver(cmd.Context())
			if err != nil {
				return err
			}
			out, err := play(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// play drives one session from line-oriented input. Invalid lines are
// reported and re-prompted without advancing the session.
func play(ctx context.Context, s *solver.Solver, in io.Reader, out io.Writer) (solver.Outcome, error) {
	sess := s.NewSession()
	sc := bufio.NewScanner(in)
	length := s.List().Length()

	for !sess.Done() {
		guess, err := sess.Next(ctx)
		if errors.Is(err, solver.ErrContradictoryFeedback) {
			break
		}
		if err != nil {
			return sess.Outcome(), err
		}
		fmt.Fprintf(out, "try %s (%d candidates)\n", guess, sess.Candidates().Len())

		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return sess.Outcome(), err
				}
				return sess.Outcome(), io.ErrUnexpectedEOF
			}
			played, p, err := parseFeedbackLine(sc.Text(), guess, length)
			if err == nil {
				err = sess.Observe(played, p)
			}
			if err != nil {
				fmt.Fprintf(out, "  %v\n", err)
				continue
			}
			break
		}
	}
	return sess.Outcome(), nil
}

// parseFeedbackLine accepts "PATTERN" or "WORD PATTERN".
func parseFeedbackLine(line, suggested string, length int) (string, game.Pattern, error) {
	fields := strings.Fields(line)
	guess := suggested
	switch len(fields) {
	case 1:
	case 2:
		guess = fields[0]
		fields = fields[1:]
	default:
		return "", nil, errors.New(`enter a pattern like "YG__G", optionally after the word played`)
	}
	p, err := game.ParsePattern(fields[0], length)
	if err != nil {
		return "", nil, err
	}
	return guess, p, nil
}
