// internal/solver/types.go
//
// Core type definitions for solve sessions.
// Defines:
//   - Status: InProgress, Solved, Failed.
//   - Reason: why a session terminated.
//   - Turn: one (guess, pattern) pair.
//   - Outcome: what a finished session reports to its caller.

package solver

import (
	"errors"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

var (
	// ErrContradictoryFeedback means no candidate is consistent with the history.
	ErrContradictoryFeedback = errors.New("contradictory feedback: no candidate fits the history")
	// ErrSessionFinished is returned when a terminal session is asked to continue.
	ErrSessionFinished = errors.New("session finished")
	// ErrNotAllowed is returned for an observed guess outside the allowed list.
	ErrNotAllowed = errors.New("not in word list")
)

// Status is the coarse session state. Terminal states are final.
type Status int

const (
	StatusInProgress Status = iota
	StatusSolved
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusFailed:
		return "failed"
	default:
		return "in_progress"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Reason says why a session terminated.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonSolved            Reason = "solved"
	ReasonContradictory     Reason = "contradictory_feedback"
	ReasonAttemptsExhausted Reason = "attempts_exhausted"
)

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess   string       `json:"guess" yaml:"guess"`
	Pattern game.Pattern `json:"pattern" yaml:"pattern"`
	// Remaining is the candidate count after the feedback was applied.
	Remaining int `json:"remaining" yaml:"remaining"`
}

// Outcome is the report of a session: terminal status, attempts used, and the
// full guess/pattern history.
type Outcome struct {
	SessionID string `json:"sessionId" yaml:"session_id"`
	Status    Status `json:"status" yaml:"status"`
	Reason    Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Attempts  int    `json:"attempts" yaml:"attempts"`
	History   []Turn `json:"history" yaml:"history"`
}

// Solved reports whether the session ended in StatusSolved.
func (o Outcome) Solved() bool { return o.Status == StatusSolved }

// Err returns ErrContradictoryFeedback for contradiction failures and nil
// otherwise; exhausting the attempts is an ordinary outcome, not an error.
func (o Outcome) Err() error {
	if o.Reason == ReasonContradictory {
		return ErrContradictoryFeedback
	}
	return nil
}
