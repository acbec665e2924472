package lexicon

import "github.com/gastoclaro/gastoclaro/internal/model"

// SurfaceFormVersion identifies the current revision of the payment
// surface-form table. Bump it whenever forms are added or remapped so stored
// drafts can be traced back to the mapping that produced them.
const SurfaceFormVersion = 3

// PaymentForm maps one spoken phrase (folded, tokenized) to its canonical
// payment method.
type PaymentForm struct {
	Tokens []string
	Method model.PaymentMethod
}

// paymentForms is the single authoritative surface-form table. Phrases are
// ordered longest-first so that "cartao de debito" is tried before the bare
// "cartao"; the matcher relies on this ordering.
var paymentForms = []PaymentForm{
	{Tokens: []string{"cartao", "de", "credito"}, Method: model.PaymentCreditCard},
	{Tokens: []string{"cartao", "de", "debito"}, Method: model.PaymentDebitCard},
	{Tokens: []string{"cartao", "credito"}, Method: model.PaymentCreditCard},
	{Tokens: []string{"cartao", "debito"}, Method: model.PaymentDebitCard},
	{Tokens: []string{"no", "credito"}, Method: model.PaymentCreditCard},
	{Tokens: []string{"no", "debito"}, Method: model.PaymentDebitCard},
	{Tokens: []string{"em", "dinheiro"}, Method: model.PaymentCash},
	{Tokens: []string{"em", "especie"}, Method: model.PaymentCash},
	{Tokens: []string{"no", "pix"}, Method: model.PaymentPix},
	{Tokens: []string{"no", "boleto"}, Method: model.PaymentBoleto},
	{Tokens: []string{"credito"}, Method: model.PaymentCreditCard},
	{Tokens: []string{"debito"}, Method: model.PaymentDebitCard},
	// Bare "cartão" with no qualifier is treated as credit, the common case.
	{Tokens: []string{"cartao"}, Method: model.PaymentCreditCard},
	{Tokens: []string{"dinheiro"}, Method: model.PaymentCash},
	{Tokens: []string{"especie"}, Method: model.PaymentCash},
	{Tokens: []string{"pix"}, Method: model.PaymentPix},
	{Tokens: []string{"transferencia"}, Method: model.PaymentBankTransfer},
	{Tokens: []string{"ted"}, Method: model.PaymentBankTransfer},
	{Tokens: []string{"doc"}, Method: model.PaymentBankTransfer},
	{Tokens: []string{"boleto"}, Method: model.PaymentBoleto},
}

// PaymentForms returns the surface-form table, longest phrases first.
func PaymentForms() []PaymentForm {
	forms := make([]PaymentForm, len(paymentForms))
	copy(forms, paymentForms)
	return forms
}

// PaymentMethods lists the canonical methods in presentation order. UI
// surfaces derive their labels from this rather than keeping their own table.
func PaymentMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		model.PaymentCash,
		model.PaymentCreditCard,
		model.PaymentDebitCard,
		model.PaymentPix,
		model.PaymentBankTransfer,
		model.PaymentBoleto,
		model.PaymentOther,
	}
}
