package extract

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

// currencyWords accepts the common ASR misspellings of "reais" alongside the
// correct forms.
var currencyWords = map[string]bool{
	"reais": true,
	"real":  true,
	"reai":  true,
	"reaus": true,
	"reals": true,
}

// amountWindow is how far past a bare number the currency word may appear.
const amountWindow = 2

// Amount scans for a currency-marked numeric token: an "r$"-prefixed number,
// or a bare number followed within a small window by "reais"/"real". The
// first occurrence in reading order wins; zero-valued matches are skipped.
func Amount(tokens []normalize.Token) Result[decimal.Decimal] {
	for i, tok := range tokens {
		if tok.Norm == "r$" && i+1 < len(tokens) {
			if v, ok := parseNumeric(tokens[i+1].Norm); ok && v.IsPositive() {
				return found(v.Round(2), Span{Start: i, End: i + 2})
			}
			continue
		}
		if strings.HasPrefix(tok.Norm, "r$") {
			if v, ok := parseNumeric(strings.TrimPrefix(tok.Norm, "r$")); ok && v.IsPositive() {
				return found(v.Round(2), Span{Start: i, End: i + 1})
			}
			continue
		}

		v, ok := parseNumeric(tok.Norm)
		if !ok {
			continue
		}
		for j := i + 1; j <= i+amountWindow && j < len(tokens); j++ {
			if !currencyWords[tokens[j].Norm] {
				continue
			}
			amount, span := extendCentavos(tokens, v, Span{Start: i, End: j + 1})
			if amount.IsPositive() {
				return found(amount.Round(2), span)
			}
			break
		}
	}
	return notFound(decimal.Zero)
}

// extendCentavos grows the match over a trailing "e N centavos" clause, the
// spoken form of a decimal amount ("dez reais e cinquenta centavos").
func extendCentavos(tokens []normalize.Token, amount decimal.Decimal, span Span) (decimal.Decimal, Span) {
	j := span.End
	if j < len(tokens) && tokens[j].Norm == "e" {
		j++
	}
	if j+1 >= len(tokens) {
		return amount, span
	}
	cents, ok := parseNumeric(tokens[j].Norm)
	if !ok || !cents.IsInteger() || cents.IsNegative() || cents.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return amount, span
	}
	next := tokens[j+1].Norm
	if next != "centavos" && next != "centavo" {
		return amount, span
	}
	return amount.Add(cents.Shift(-2)), Span{Start: span.Start, End: j + 2}
}

// parseNumeric converts a folded token into a decimal, handling Brazilian
// separators: "," is the decimal mark, "." groups thousands. A lone dot with
// exactly three trailing digits is read as a thousands separator ("1.300"),
// otherwise as a decimal point ("10.50", as some ASR output writes it).
func parseNumeric(norm string) (decimal.Decimal, bool) {
	if norm == "" {
		return decimal.Zero, false
	}
	for _, r := range norm {
		if !unicode.IsDigit(r) && r != ',' && r != '.' {
			return decimal.Zero, false
		}
	}

	s := norm
	switch {
	case strings.Contains(s, ","):
		if strings.Count(s, ",") > 1 {
			return decimal.Zero, false
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") == 1:
		if idx := strings.Index(s, "."); len(s)-idx-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	default:
		s = strings.ReplaceAll(s, ".", "")
	}

	if s == "" || s == "." {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
