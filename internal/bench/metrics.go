// internal/bench/metrics.go

package bench

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func mean[T number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

func median[T number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return float64(s[mid])
	}
	return (float64(s[mid-1]) + float64(s[mid])) / 2
}

// stdev is the sample standard deviation; fewer than two values give 0.
func stdev[T number](xs []T) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := float64(x) - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Compute aggregates a batch.
func Compute(b Batch) Metrics {
	m := Metrics{
		TotalGames:        len(b.Games),
		GuessDistribution: map[int]int{},
		FailedWords:       []string{},
	}
	if m.TotalGames == 0 {
		return m
	}

	var (
		counts    []int
		durations []int64
	)
	for _, g := range b.Games {
		durations = append(durations, g.Duration.Nanoseconds())
		if !g.Won {
			m.FailedWords = append(m.FailedWords, g.Answer)
			continue
		}
		n := g.NumGuesses()
		counts = append(counts, n)
		m.GuessDistribution[n]++
		m.WorstCaseGuesses = max(m.WorstCaseGuesses, n)
	}

	m.WinRate = float64(len(counts)) / float64(m.TotalGames) * 100
	m.AverageDurationMs = round(mean(durations)/1e6, 2)
	m.MeanGuesses = round(mean(counts), 3)
	m.MedianGuesses = round(median(counts), 3)
	m.StdDevGuesses = round(stdev(counts), 3)
	m.FailureEntropy = FailureEntropy(m.FailedWords)
	return m
}

// FailureEntropy is the Shannon entropy in bits of the letter frequencies
// across failed words, rounded to three places. High values mean failures
// are spread over diverse letters.
func FailureEntropy(failed []string) float64 {
	var counts [26]int
	total := 0
	for _, w := range failed {
		for _, r := range strings.ToUpper(w) {
			if r >= 'A' && r <= 'Z' {
				counts[r-'A']++
				total++
			}
		}
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return round(h, 3)
}

// ErrConfidence is returned for a confidence level outside (0, 1).
var ErrConfidence = errors.New("confidence level must be in (0, 1)")

// SampleSize returns the number of games needed to estimate a proportion p
// within margin at the given confidence: n = z²·p(1−p)/margin².
func SampleSize(confidence, margin, p float64) (int, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, fmt.Errorf("%w, got %v", ErrConfidence, confidence)
	}
	if margin <= 0 {
		return 0, fmt.Errorf("margin of error must be positive, got %v", margin)
	}
	// z = Φ⁻¹((1+c)/2) = √2·erfinv(c)
	z := math.Sqrt2 * math.Erfinv(confidence)
	n := z * z * p * (1 - p) / (margin * margin)
	return int(math.Ceil(n)), nil
}
