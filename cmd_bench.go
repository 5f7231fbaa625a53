// cmd_bench.go
//
// bench plays many simulated games and reports aggregate metrics.
// Runs can be saved to SQLite (--db or WORDLE_RESULTS_DB) and listed later.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/results"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		all        bool
		n          int
		confidence float64
		margin     float64
		proportion float64
		format     string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the solver over many secrets",
		Long: `Without --all or --n the sample size is derived from --confidence and --margin,
capped at the size of the solution bank.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := a.newSolver(ctx)
			if err != nil {
				return err
			}

			if !all && n <= 0 {
				if n, err = bench.SampleSize(confidence, margin, proportion); err != nil {
					return err
				}
				a.log.Info().Int("games", n).Float64("confidence", confidence).Float64("margin", margin).Msg("sample size")
			}
			secrets := s.List().Answers()
			oracleName := "all"
			if !all && n < len(secrets) {
				ch := a.chooser()
				secrets = ch.Sample(s.List(), n)
				oracleName = ch.Name()
			}

			var progress io.Writer
			if !quiet && isatty.IsTerminal(os.Stderr.Fd()) {
				progress = os.Stderr
			}
			r := bench.NewRunner(s,
				bench.WithWorkers(a.cfg.Workers),
				bench.WithProgress(progress),
				bench.WithOracle(oracleName),
				bench.WithSettings(map[string]any{
					"wordLength":  a.cfg.WordLength,
					"maxAttempts": a.cfg.MaxAttempts,
					"opener":      a.cfg.Opener,
					"seed":        a.cfg.Seed,
				}),
				bench.WithLogger(a.log),
			)
			b, err := r.Run(ctx, secrets)
			if err != nil {
				return err
			}

			if a.cfg.ResultsDB != "" {
				db, err := results.Open(a.cfg.ResultsDB, a.log)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.SaveBatch(ctx, b); err != nil {
					return err
				}
			}
			return bench.Write(cmd.OutOrStdout(), format, bench.NewReport(b))
		},
	}
	f := cmd.Flags()
	f.BoolVar(&all, "all", false, "play every word in the solution bank")
	f.IntVarP(&n, "games", "n", 0, "number of random secrets to play")
	f.Float64Var(&confidence, "confidence", 0.95, "confidence level for the derived sample size")
	f.Float64Var(&margin, "margin", 0.01, "margin of error for the derived sample size")
	f.Float64Var(&proportion, "proportion", 0.5, "estimated win proportion for the derived sample size")
	f.StringVar(&format, "format", "json", "summary format: json or yaml")
	f.BoolVarP(&quiet, "quiet", "q", false, "no progress bar")
	cmd.PersistentFlags().StringVar(&a.cfg.ResultsDB, "db", a.cfg.ResultsDB, "SQLite file to store runs in")

	cmd.AddCommand(newBenchRunsCmd(a), newBenchShowCmd(a))
	return cmd
}

func (a *app) openResults() (*results.DB, error) {
	if a.cfg.ResultsDB == "" {
		return nil, errors.New("no results database: set --db or WORDLE_RESULTS_DB")
	}
	return results.Open(a.cfg.ResultsDB, a.log)
}

func newBenchRunsCmd(a *app) *cobra.Command {
	var (
		strategy string
		limit    int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored benchmark runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openResults()
			if err != nil {
				return err
			}
			defer db.Close()
			runs, err := db.ListRuns(cmd.Context(), strategy, limit)
			if err != nil {
				return err
			}
			if format != "text" {
				return bench.Write(cmd.OutOrStdout(), format, runs)
			}
			w := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintf(w, "%s  %s  %-13s %-8s %d/%d won\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Strategy, r.Oracle, r.Wins, r.Games)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "only", "", "only runs of this strategy")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func newBenchShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Recompute the metrics of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openResults()
			if err != nil {
				return err
			}
			defer db.Close()
			b, err := db.LoadBatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return bench.Write(cmd.OutOrStdout(), format, bench.NewReport(b))
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
