package model

import "fmt"

// PaymentMethod is the canonical, closed set of payment forms. Every spoken
// surface form ("no crédito", "cartão de débito", ...) resolves to exactly one
// of these values; unrecognized phrasing resolves to PaymentOther.
type PaymentMethod string

const (
	// PaymentCash covers cash payments ("dinheiro", "em espécie").
	PaymentCash PaymentMethod = "cash"
	// PaymentCreditCard covers credit card payments.
	PaymentCreditCard PaymentMethod = "credit_card"
	// PaymentDebitCard covers debit card payments.
	PaymentDebitCard PaymentMethod = "debit_card"
	// PaymentPix covers instant Pix transfers.
	PaymentPix PaymentMethod = "pix"
	// PaymentBankTransfer covers TED/DOC bank transfers.
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	// PaymentBoleto covers boleto slips.
	PaymentBoleto PaymentMethod = "boleto"
	// PaymentOther is the fallback when no surface form matched.
	PaymentOther PaymentMethod = "other"
)

// Valid reports whether m is one of the canonical values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix,
		PaymentBankTransfer, PaymentBoleto, PaymentOther:
		return true
	}
	return false
}

// Display returns the Portuguese label shown to users, matching how the
// method is spoken.
func (m PaymentMethod) Display() string {
	switch m {
	case PaymentCash:
		return "dinheiro"
	case PaymentCreditCard:
		return "cartão de crédito"
	case PaymentDebitCard:
		return "cartão de débito"
	case PaymentPix:
		return "pix"
	case PaymentBankTransfer:
		return "transferência"
	case PaymentBoleto:
		return "boleto"
	default:
		return "indefinida"
	}
}

// ParsePaymentMethod converts a stored canonical token back into a
// PaymentMethod. Unknown tokens are an error rather than silently becoming
// PaymentOther so that storage corruption is visible.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return PaymentOther, fmt.Errorf("unknown payment method %q", s)
	}
	return m, nil
}
