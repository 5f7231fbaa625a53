package entropy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrNoCandidates is returned when asked to rank against an empty set.
var ErrNoCandidates = errors.New("no candidates to rank against")

// tieResolution is the grid scores are snapped to before comparison;
// scores closer than this are ties.
const tieResolution = 1e9

// Ranked is a scored guess.
type Ranked struct {
	Guess     string  `json:"guess" yaml:"guess"`
	Score     float64 `json:"score" yaml:"score"`
	Candidate bool    `json:"candidate" yaml:"candidate"`
}

// Better reports whether a ranks ahead of b: higher score, then guesses still
// in the candidate set, then lexicographic order.
func Better(a, b Ranked) bool {
	if ka, kb := key(a.Score), key(b.Score); ka != kb {
		return ka > kb
	}
	if a.Candidate != b.Candidate {
		return a.Candidate
	}
	return a.Guess < b.Guess
}

func key(s float64) float64 { return math.Round(s * tieResolution) }

// Ranker scores many guesses concurrently and reduces to the best.
type Ranker struct {
	scorer  Scorer
	workers int
	log     zerolog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithWorkers bounds the scoring goroutines. n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger for ranking diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Ranker) { r.log = l }
}

// NewRanker returns a Ranker using s.
func NewRanker(s Scorer, opts ...Option) *Ranker {
	r := &Ranker{scorer: s, workers: runtime.GOMAXPROCS(0), log: zerolog.Nop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Scorer returns the strategy the ranker uses.
func (r *Ranker) Scorer() Scorer { return r.scorer }

// Best returns the top-ranked guess among guesses.
func (r *Ranker) Best(ctx context.Context, guesses []string, c *game.CandidateSet) (Ranked, error) {
	scored, err := r.score(ctx, guesses, c)
	if err != nil {
		return Ranked{}, err
	}
	best := scored[0]
	for _, s := range scored[1:] {
		if Better(s, best) {
			best = s
		}
	}
	return best, nil
}

// Top returns the n best guesses in rank order. n ≤ 0 returns all of them.
func (r *Ranker) Top(ctx context.Context, guesses []string, c *game.CandidateSet, n int) ([]Ranked, error) {
	scored, err := r.score(ctx, guesses, c)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(scored, func(a, b Ranked) int {
		switch {
		case Better(a, b):
			return -1
		case Better(b, a):
			return 1
		}
		return strings.Compare(a.Guess, b.Guess)
	})
	if n > 0 && n < len(scored) {
		scored = scored[:n]
	}
	return scored, nil
}

// score evaluates every guess, splitting the work into one chunk per worker.
func (r *Ranker) score(ctx context.Context, guesses []string, c *game.CandidateSet) ([]Ranked, error) {
	if c.Empty() {
		return nil, ErrNoCandidates
	}
	if len(guesses) == 0 {
		return nil, errors.New("no guesses to rank")
	}
	start := time.Now()
	out := make([]Ranked, len(guesses))
	chunk := (len(guesses) + r.workers - 1) / r.workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(guesses); lo += chunk {
		hi := min(lo+chunk, len(guesses))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%256 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				w := words.Normalize(guesses[i])
				score, err := r.scorer.Score(w, c)
				if err != nil {
					return fmt.Errorf("score %q: %w", w, err)
				}
				out[i] = Ranked{Guess: w, Score: score, Candidate: c.Contains(w)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.log.Debug().
		Str("strategy", r.scorer.Name()).
		Int("guesses", len(guesses)).
		Int("candidates", c.Len()).
		Dur("took", time.Since(start)).
		Msg("scored guesses")
	return out, nil
}
