package extract

import (
	"github.com/gastoclaro/gastoclaro/internal/lexicon"
	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

// Payment matches the surface-form table against the token stream. At each
// position the longest phrase wins (so "cartão de débito" beats the bare
// "cartão"); when distinct canonical methods match at different positions,
// the last occurrence wins, since the payment method is typically a trailing
// clause ("... no crédito"). No match yields PaymentOther.
func Payment(tokens []normalize.Token) Result[model.PaymentMethod] {
	forms := lexicon.PaymentForms()

	var (
		method  model.PaymentMethod
		span    Span
		matched bool
	)
	for i := 0; i < len(tokens); {
		advanced := false
		for _, f := range forms {
			if phraseAt(tokens, i, f.Tokens) {
				method = f.Method
				span = Span{Start: i, End: i + len(f.Tokens)}
				matched = true
				i += len(f.Tokens)
				advanced = true
				break
			}
		}
		if !advanced {
			i++
		}
	}

	if !matched {
		return notFound(model.PaymentOther)
	}
	return found(method, span)
}
