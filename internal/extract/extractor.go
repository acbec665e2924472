// Package extract implements the per-field extractors of the pipeline. All
// extractors share one contract: scan an immutable token sequence (plus the
// caller's lexicon where relevant) and return a typed value with the token
// span it was matched from, or a not-found result carrying the field's
// default. Matching is first-qualifying, leftmost, longest-phrase-wins.
package extract

import "github.com/gastoclaro/gastoclaro/internal/normalize"

// Span is a half-open token index range [Start, End) into the normalized
// token sequence.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the token index i falls inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Result is the outcome of one extractor run. When Found is false, Value
// holds the field's default and Span is meaningless.
type Result[T any] struct {
	Value T
	Span  Span
	Found bool
}

func found[T any](v T, s Span) Result[T] {
	return Result[T]{Value: v, Span: s, Found: true}
}

func notFound[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// phraseAt reports whether the folded phrase matches the tokens starting at i.
func phraseAt(tokens []normalize.Token, i int, phrase []string) bool {
	if i+len(phrase) > len(tokens) {
		return false
	}
	for k, w := range phrase {
		if tokens[i+k].Norm != w {
			return false
		}
	}
	return true
}
