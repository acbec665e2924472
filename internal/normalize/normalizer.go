// Package normalize turns a raw transcript into a sequence of matchable
// tokens while preserving the original text for description reconstruction.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is one normalized unit of the transcript. Norm is the lower-cased,
// accent-stripped form used for matching; Raw and the byte offsets point back
// into the original transcript so spans can be reconstructed with their
// original casing and accents.
type Token struct {
	Norm  string
	Raw   string
	Start int
	End   int
}

// Fold lower-cases s and strips diacritics ("crédito" -> "credito").
func Fold(s string) string {
	// A fresh transformer chain per call keeps Fold safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Tokenize splits text on whitespace and punctuation, folds each token for
// matching, and collapses written-out number phrases ("cento e cinquenta")
// into single numeric tokens. Empty input yields an empty sequence.
func Tokenize(text string) []Token {
	tokens := scan(text)
	return foldNumberPhrases(text, tokens)
}

func scan(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTokenRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if isTokenRune(r) {
				i += size
				continue
			}
			if isDecimalSeparator(text, start, i, r, size) {
				i += size
				continue
			}
			break
		}
		raw := text[start:i]
		tokens = append(tokens, Token{
			Norm:  Fold(raw),
			Raw:   raw,
			Start: start,
			End:   i,
		})
	}
	return tokens
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '$'
}

// isDecimalSeparator keeps "," and "." inside digit runs so "1.300,50" stays
// one token instead of splitting into four.
func isDecimalSeparator(text string, start, pos int, r rune, size int) bool {
	if r != ',' && r != '.' {
		return false
	}
	if pos <= start || pos+size >= len(text) {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(text[start:pos])
	next, _ := utf8.DecodeRuneInString(text[pos+size:])
	return unicode.IsDigit(prev) && unicode.IsDigit(next)
}
