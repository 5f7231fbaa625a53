// internal/game/engine.go
//
// Feedback model: scores a guess against a secret with Wordle's two-pass
// duplicate-letter rule.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) secret letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// A letter is therefore never credited more times than it occurs unconsumed in
// the secret, and hits always claim their letter before presents do.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Score compares guess to secret. Both must be the same length and A–Z.
func Score(guess, secret string) (Pattern, error) {
	if err := check(guess, secret); err != nil {
		return nil, err
	}
	return DecodePattern(ScoreCode(guess, secret), len(guess)), nil
}

// ScoreCode is the allocation-free form of Score returning the base-3 code.
// Inputs are assumed validated: equal length, uppercase A–Z.
func ScoreCode(guess, secret string) uint32 {
	n := len(guess)
	var counts [26]uint8
	var hit [MaxWordLength]bool

	// First pass: mark hits and collect counts for remaining secret letters.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			hit[i] = true
		} else {
			counts[secret[i]-'A']++
		}
	}

	var code uint32
	for i := n - 1; i >= 0; i-- {
		code *= 3
		if hit[i] {
			code += uint32(MarkHit)
		}
	}

	// Second pass: left to right, so the leftmost duplicate claims the remaining budget.
	pow := uint32(1)
	for i := 0; i < n; i++ {
		if !hit[i] {
			j := guess[i] - 'A'
			if counts[j] > 0 {
				counts[j]--
				code += pow * uint32(MarkPresent)
			}
		}
		pow *= 3
	}
	return code
}

// MaxWordLength is the largest word length the feedback model supports.
const MaxWordLength = 10

// check validates a guess/secret pair at the call boundary.
func check(guess, secret string) error {
	if len(guess) != len(secret) {
		return fmt.Errorf("%w: guess %q has %d letters, secret has %d",
			ErrInvalidGuessLength, guess, len(guess), len(secret))
	}
	if len(guess) == 0 || len(guess) > MaxWordLength {
		return fmt.Errorf("%w: %d letters", ErrInvalidGuessLength, len(guess))
	}
	if !isAlpha(guess) || !isAlpha(secret) {
		return ErrInvalidLetter
	}
	return nil
}

// CheckGuess normalizes guess and checks it is n letters A–Z.
// Callers of ScoreCode on unvalidated input go through here first.
func CheckGuess(guess string, n int) (string, error) {
	guess = words.Normalize(guess)
	if len(guess) != n {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidGuessLength, guess, len(guess), n)
	}
	if !isAlpha(guess) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLetter, guess)
	}
	return guess, nil
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
