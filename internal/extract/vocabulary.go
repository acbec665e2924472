package extract

import (
	"strings"

	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

// CostCenter matches the user's configured cost centers against the
// transcript. A miss resolves to the lexicon's default (first) entry.
func CostCenter(tokens []normalize.Token, lex model.Lexicon) Result[string] {
	return matchVocabulary(tokens, lex.CostCenters, lex.DefaultCostCenter())
}

// Category matches the user's configured categories against the transcript.
// A miss resolves to the lexicon's designated default category.
func Category(tokens []normalize.Token, lex model.Lexicon) Result[string] {
	return matchVocabulary(tokens, lex.Categories, lex.DefaultCategory())
}

// matchVocabulary performs a case/accent-insensitive substring match of each
// configured entry against the normalized transcript. The leftmost match
// wins; on position ties the longest entry wins. The substring may cross
// token boundaries ("Empresa 2") or sit inside a token ("mercado" within
// "supermercado").
func matchVocabulary(tokens []normalize.Token, entries []string, fallback string) Result[string] {
	if len(tokens) == 0 {
		return notFound(fallback)
	}

	// Join the folded tokens into one searchable string, remembering where
	// each token starts so matches can be mapped back to token spans.
	starts := make([]int, len(tokens))
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		starts[i] = b.Len()
		b.WriteString(tok.Norm)
	}
	haystack := b.String()

	bestPos := -1
	bestLen := 0
	bestEntry := ""
	for _, entry := range entries {
		needle := normalize.Fold(strings.TrimSpace(entry))
		if needle == "" {
			continue
		}
		pos := strings.Index(haystack, needle)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos || (pos == bestPos && len(needle) > bestLen) {
			bestPos = pos
			bestLen = len(needle)
			bestEntry = entry
		}
	}

	if bestPos < 0 {
		return notFound(fallback)
	}
	return found(bestEntry, spanForRange(starts, tokens, bestPos, bestPos+bestLen))
}

// spanForRange converts a byte range of the joined haystack into the token
// span overlapping it.
func spanForRange(starts []int, tokens []normalize.Token, lo, hi int) Span {
	span := Span{Start: -1}
	for i := range tokens {
		tokLo := starts[i]
		tokHi := tokLo + len(tokens[i].Norm)
		if tokHi <= lo || tokLo >= hi {
			continue
		}
		if span.Start == -1 {
			span.Start = i
		}
		span.End = i + 1
	}
	if span.Start == -1 {
		span = Span{}
	}
	return span
}
