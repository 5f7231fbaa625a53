// internal/game/types.go
//
// Feedback types for the solver.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Pattern: the ordered marks for one guess, with text and base-3 encodings.
//
// Text encoding (stable, used by the CLI and benchmark reports):
//   G = hit, Y = present, _ = miss
// ParsePattern also accepts C/P/A, 2/1/0, and lowercase g/y with b, x, '-' or '.' for miss.
//
// Numeric encoding: code = Σ mark[i]·3^i (position 0 is the least-significant digit,
// miss=0, present=1, hit=2). For L=5 the codes span 0..242 and all-hit is 242.

package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidGuessLength    = errors.New("invalid guess length")
	ErrInvalidFeedbackLength = errors.New("invalid feedback length")
	ErrInvalidLetter         = errors.New("word must be letters A-Z")
	ErrInvalidSymbol         = errors.New("invalid feedback symbol")
)

// Mark represents the evaluation result for a single letter in a guess.
// The numeric value is the base-3 digit used by Pattern.Code.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkPresent
	MarkHit
)

// String returns "hit", "present" or "miss".
func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// Symbol returns the single-character text encoding of m.
func (m Mark) Symbol() byte {
	switch m {
	case MarkHit:
		return 'G'
	case MarkPresent:
		return 'Y'
	default:
		return '_'
	}
}

// Pattern is the ordered feedback for one guess.
type Pattern []Mark

// Solved reports whether every mark is a hit.
func (p Pattern) Solved() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return len(p) > 0
}

// Validate rejects marks outside miss/present/hit.
func (p Pattern) Validate() error {
	for i, m := range p {
		if m > MarkHit {
			return fmt.Errorf("%w: mark %d at position %d", ErrInvalidSymbol, m, i+1)
		}
	}
	return nil
}

// Equal reports whether p and q hold the same marks in the same order.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Code returns the base-3 encoding of p.
func (p Pattern) Code() uint32 {
	var c uint32
	for i := len(p) - 1; i >= 0; i-- {
		c = c*3 + uint32(p[i])
	}
	return c
}

// String renders p with the G/Y/_ symbols.
func (p Pattern) String() string {
	b := make([]byte, len(p))
	for i, m := range p {
		b[i] = m.Symbol()
	}
	return string(b)
}

// MarshalText encodes p as G/Y/_ symbols.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes symbols of any accepted alias.
func (p *Pattern) UnmarshalText(b []byte) error {
	q, err := ParsePattern(string(b), 0)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// DecodePattern expands a base-3 code into a Pattern of the given length.
func DecodePattern(code uint32, length int) Pattern {
	p := make(Pattern, length)
	for i := 0; i < length; i++ {
		p[i] = Mark(code % 3)
		code /= 3
	}
	return p
}

// SolvedCode returns the code of the all-hit pattern for length L.
func SolvedCode(length int) uint32 {
	var c uint32
	for i := 0; i < length; i++ {
		c = c*3 + uint32(MarkHit)
	}
	return c
}

// NumPatterns returns 3^length, the size of the code space.
func NumPatterns(length int) int {
	n := 1
	for i := 0; i < length; i++ {
		n *= 3
	}
	return n
}

// ParsePattern decodes a textual pattern. Spaces and commas are ignored.
// A length of 0 accepts any non-empty pattern.
func ParsePattern(s string, length int) (Pattern, error) {
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(strings.TrimSpace(s))
	p := make(Pattern, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g', 'C', 'c', '2':
			p = append(p, MarkHit)
		case 'Y', 'y', 'P', 'p', '1':
			p = append(p, MarkPresent)
		case '_', 'B', 'b', 'X', 'x', 'A', 'a', '-', '.', '0':
			p = append(p, MarkMiss)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[i], i+1)
		}
	}
	if len(p) == 0 || (length > 0 && len(p) != length) {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidFeedbackLength, len(p), length)
	}
	return p, nil
}
