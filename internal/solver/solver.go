// internal/solver/solver.go
//
// Solver ties an immutable word list to a guess-selection strategy and hands
// out independent sessions. A Solver is safe for concurrent use; each Session
// belongs to a single goroutine.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultMaxAttempts is the classic Wordle guess limit.
const DefaultMaxAttempts = 6

// FeedbackSource supplies the pattern for a guess. Simulations compute it from
// a known secret; interactive drivers may block on a human.
type FeedbackSource interface {
	Feedback(ctx context.Context, guess string) (game.Pattern, error)
}

// FeedbackFunc adapts a function to FeedbackSource.
type FeedbackFunc func(ctx context.Context, guess string) (game.Pattern, error)

func (f FeedbackFunc) Feedback(ctx context.Context, guess string) (game.Pattern, error) {
	return f(ctx, guess)
}

// Secret returns a FeedbackSource scoring guesses against secret.
func Secret(secret string) FeedbackSource {
	secret = words.Normalize(secret)
	return FeedbackFunc(func(_ context.Context, guess string) (game.Pattern, error) {
		return game.Score(guess, secret)
	})
}

// Solver creates sessions over one word list.
type Solver struct {
	list        *words.List
	guesses     []string
	ranker      *entropy.Ranker
	maxAttempts int
	opener      string
	openers     store.Store
	log         zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxAttempts sets the guess limit per session.
func WithMaxAttempts(n int) Option {
	return func(s *Solver) { s.maxAttempts = n }
}

// WithOpener fixes the first guess of every session.
func WithOpener(w string) Option {
	return func(s *Solver) { s.opener = words.Normalize(w) }
}

// WithOpenerCache shares computed first guesses across sessions.
func WithOpenerCache(st store.Store) Option {
	return func(s *Solver) { s.openers = st }
}

// WithLogger sets the logger used for per-turn diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// New validates the options and returns a Solver picking guesses with ranker.
func New(list *words.List, ranker *entropy.Ranker, opts ...Option) (*Solver, error) {
	if list == nil || ranker == nil {
		return nil, errors.New("solver: word list and ranker are required")
	}
	s := &Solver{
		list:        list,
		guesses:     list.Allowed(),
		ranker:      ranker,
		maxAttempts: DefaultMaxAttempts,
		log:         zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.maxAttempts < 1 {
		return nil, fmt.Errorf("solver: max attempts must be positive, got %d", s.maxAttempts)
	}
	if s.opener != "" {
		if len(s.opener) != list.Length() {
			return nil, fmt.Errorf("solver: opener %q: %w", s.opener, game.ErrInvalidGuessLength)
		}
		if !list.IsAllowed(s.opener) {
			return nil, fmt.Errorf("solver: opener %q: %w", s.opener, ErrNotAllowed)
		}
	}
	return s, nil
}

// List returns the solver's word list.
func (s *Solver) List() *words.List { return s.list }

// MaxAttempts returns the per-session guess limit.
func (s *Solver) MaxAttempts() int { return s.maxAttempts }

// Strategy returns the name of the scoring strategy.
func (s *Solver) Strategy() string { return s.ranker.Scorer().Name() }

// Solve runs a fresh session to completion against src.
func (s *Solver) Solve(ctx context.Context, src FeedbackSource) (Outcome, error) {
	return s.NewSession().Run(ctx, src)
}

// Simulate solves for a known secret, which must be in the solution bank.
func (s *Solver) Simulate(ctx context.Context, secret string) (Outcome, error) {
	if !s.list.IsAnswer(secret) {
		return Outcome{}, fmt.Errorf("secret %q is not in the solution bank", secret)
	}
	return s.Solve(ctx, Secret(secret))
}

// Rank scores every allowed guess against c and returns the best n.
func (s *Solver) Rank(ctx context.Context, c *game.CandidateSet, n int) ([]entropy.Ranked, error) {
	return s.ranker.Top(ctx, s.guesses, c, n)
}

// openerKey identifies the computed first guess for this list and scorer.
func (s *Solver) openerKey() string {
	return s.list.Fingerprint() + "/" + entropy.CacheKey(s.ranker.Scorer())
}
