package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

// MaxInstallments caps the installment count; out-of-range values are
// clamped, not rejected.
const MaxInstallments = 24

var installmentWords = map[string]bool{
	"vezes":    true,
	"vez":      true,
	"parcelas": true,
	"parcela":  true,
}

var timesTokenRe = regexp.MustCompile(`^(\d+)x$`)

// InstallmentCount scans for installment phrasing: "<N> vezes",
// "em <N> parcelas", "parcelado em <N>" or the compact "<N>x". The count is
// clamped to [1, MaxInstallments]; no match means a single installment.
func InstallmentCount(tokens []normalize.Token) Result[int] {
	for i, tok := range tokens {
		if m := timesTokenRe.FindStringSubmatch(tok.Norm); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return found(clampCount(n), Span{Start: i, End: i + 1})
			}
		}

		n, err := strconv.Atoi(tok.Norm)
		if err != nil {
			continue
		}

		if i+1 < len(tokens) && installmentWords[tokens[i+1].Norm] {
			start := i
			if i > 0 && tokens[i-1].Norm == "em" {
				start = i - 1
			}
			return found(clampCount(n), Span{Start: start, End: i + 2})
		}

		// "parcelado em 3"
		if i >= 2 && tokens[i-1].Norm == "em" && strings.HasPrefix(tokens[i-2].Norm, "parcelad") {
			return found(clampCount(n), Span{Start: i - 2, End: i + 1})
		}
	}
	return notFound(1)
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxInstallments {
		return MaxInstallments
	}
	return n
}
