// Package match implements the escalating fuzzy-match strategies used
// for vocabulary lookup: exact, case-insensitive, normalized-alphabetic,
// and stem comparison. Each strategy reduces a string to a comparable
// key; two strings match under a strategy when their keys are equal.
package match

import "strings"

// Strategy reduces a string to a comparison key. ok=false means the
// strategy must not be attempted for this input (guard thresholds).
type Strategy struct {
	Name string
	Key  func(s string) (key string, ok bool)
}

// Strategy names, in escalation order.
const (
	StrategyExact      = "exact"
	StrategyFold       = "case-insensitive"
	StrategyNormalized = "normalized-alphabetic"
	StrategyStem       = "stem"
)

// Strategies is the ordered cascade. Callers short-circuit on the first
// strategy that produces a hit; later strategies trade precision for
// recall and carry minimum-length guards against short accidental
// collisions.
var Strategies = []Strategy{
	{
		Name: StrategyExact,
		Key:  func(s string) (string, bool) { return s, true },
	},
	{
		Name: StrategyFold,
		Key:  func(s string) (string, bool) { return strings.ToLower(s), true },
	},
	{
		Name: StrategyNormalized,
		Key: func(s string) (string, bool) {
			n := NormalizeAlpha(s)
			return n, len(n) >= 3
		},
	},
	{
		Name: StrategyStem,
		Key: func(s string) (string, bool) {
			st := Stem(s)
			return st, len(st) >= 3
		},
	},
}

// NormalizeAlpha strips all non-letter characters and lowercases the
// remainder.
func NormalizeAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
