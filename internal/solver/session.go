// internal/solver/session.go
//
// Session is the guess/feedback/filter state machine for one puzzle.
//
// Each turn:
//  1. An empty candidate set fails the session as contradictory.
//  2. Next picks the guess: the fixed opener on turn 1 if configured, the sole
//     candidate if only one remains, otherwise the best-ranked allowed guess.
//  3. The pattern comes from a FeedbackSource (Step/Run) or the caller (Observe).
//  4. An all-hit pattern solves the session.
//  5. Reaching the attempt limit fails the session as exhausted.
//  6. Otherwise the candidates are filtered by the pattern and the loop repeats.
//     A filter that leaves nothing fails the session as contradictory.
//
// Terminal states are final. Invalid guesses or patterns are rejected without
// advancing the session.

package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Session holds the mutable state of one solve. It is not safe for concurrent use.
type Session struct {
	id         string
	solver     *Solver
	candidates *game.CandidateSet
	history    []Turn
	status     Status
	reason     Reason
}

// NewSession starts a session with the full solution bank as candidates.
func (s *Solver) NewSession() *Session {
	return &Session{
		id:         uuid.NewString(),
		solver:     s,
		candidates: game.NewCandidateSet(s.list),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current state.
func (s *Session) Status() Status { return s.status }

// Reason returns why the session terminated, if it has.
func (s *Session) Reason() Reason { return s.reason }

// Attempts returns the number of guesses applied so far.
func (s *Session) Attempts() int { return len(s.history) }

// Candidates returns the current candidate set.
func (s *Session) Candidates() *game.CandidateSet { return s.candidates }

// History returns a copy of the turns so far.
func (s *Session) History() []Turn { return slices.Clone(s.history) }

// Done reports whether the session has reached a terminal state.
func (s *Session) Done() bool { return s.status != StatusInProgress }

// Outcome reports the session's current state and history.
func (s *Session) Outcome() Outcome {
	return Outcome{
		SessionID: s.id,
		Status:    s.status,
		Reason:    s.reason,
		Attempts:  len(s.history),
		History:   s.History(),
	}
}

// Next returns the guess the strategy recommends for the current turn.
// If no candidate remains the session fails with ErrContradictoryFeedback.
func (s *Session) Next(ctx context.Context) (string, error) {
	if s.Done() {
		return "", ErrSessionFinished
	}
	if s.candidates.Empty() {
		s.finish(StatusFailed, ReasonContradictory)
		return "", ErrContradictoryFeedback
	}

	sv := s.solver
	first := len(s.history) == 0
	switch {
	case first && sv.opener != "":
		return sv.opener, nil
	case s.candidates.Len() == 1:
		w, _ := s.candidates.First()
		return w, nil
	case first && sv.openers != nil:
		return sv.openers.Get(ctx, sv.openerKey(), s.best)
	default:
		return s.best(ctx)
	}
}

func (s *Session) best(ctx context.Context) (string, error) {
	r, err := s.solver.ranker.Best(ctx, s.solver.guesses, s.candidates)
	if err != nil {
		return "", err
	}
	return r.Guess, nil
}

// Observe applies the feedback p received for guess.
func (s *Session) Observe(guess string, p game.Pattern) error {
	if s.Done() {
		return ErrSessionFinished
	}
	list := s.solver.list
	guess = words.Normalize(guess)
	if len(guess) != list.Length() {
		return fmt.Errorf("%w: %q has %d letters, want %d", game.ErrInvalidGuessLength, guess, len(guess), list.Length())
	}
	if len(p) != list.Length() {
		return fmt.Errorf("%w: got %d marks, want %d", game.ErrInvalidFeedbackLength, len(p), list.Length())
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !list.IsAllowed(guess) {
		return fmt.Errorf("%q: %w", guess, ErrNotAllowed)
	}

	turn := Turn{Guess: guess, Pattern: slices.Clone(p)}
	switch {
	case p.Solved():
		turn.Remaining = 1
		s.history = append(s.history, turn)
		s.finish(StatusSolved, ReasonSolved)
	case len(s.history)+1 >= s.solver.maxAttempts:
		turn.Remaining = s.candidates.Len()
		s.history = append(s.history, turn)
		s.finish(StatusFailed, ReasonAttemptsExhausted)
	default:
		next, err := game.Filter(s.candidates, guess, p)
		if err != nil {
			return err
		}
		s.candidates = next
		turn.Remaining = next.Len()
		s.history = append(s.history, turn)
		if next.Empty() {
			s.finish(StatusFailed, ReasonContradictory)
		}
	}

	s.solver.log.Debug().
		Str("session", s.id).
		Int("turn", len(s.history)).
		Str("guess", guess).
		Stringer("pattern", p).
		Int("remaining", turn.Remaining).
		Msg("turn")
	return nil
}

// Step plays one turn: pick a guess, ask src for its pattern, apply it.
func (s *Session) Step(ctx context.Context, src FeedbackSource) (Turn, error) {
	guess, err := s.Next(ctx)
	if err != nil {
		return Turn{}, err
	}
	p, err := src.Feedback(ctx, guess)
	if err != nil {
		return Turn{}, fmt.Errorf("feedback for %q: %w", guess, err)
	}
	if err := s.Observe(guess, p); err != nil {
		return Turn{}, err
	}
	return s.history[len(s.history)-1], nil
}

// Run steps until the session terminates. Contradictory feedback and attempt
// exhaustion are reported in the Outcome; only invalid input, source failures,
// and cancellation are returned as errors.
func (s *Session) Run(ctx context.Context, src FeedbackSource) (Outcome, error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Outcome(), err
		}
		if _, err := s.Step(ctx, src); err != nil && !errors.Is(err, ErrContradictoryFeedback) {
			return s.Outcome(), err
		}
	}
	ev := s.solver.log.Info()
	if s.status == StatusFailed {
		ev = s.solver.log.Warn()
	}
	ev.Str("session", s.id).
		Stringer("status", s.status).
		Str("reason", string(s.reason)).
		Int("attempts", len(s.history)).
		Msg("session finished")
	return s.Outcome(), nil
}

func (s *Session) finish(st Status, r Reason) {
	s.status, s.reason = st, r
}
