// Package engine is the public entry point of the extraction pipeline: it
// runs normalization, the field extractors, draft assembly and installment
// planning over one transcript.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/extract"
	"github.com/gastoclaro/gastoclaro/internal/installment"
	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

// FallbackDescription is the fixed marker used when extraction fails on an
// empty transcript.
const FallbackDescription = "despesa não reconhecida"

// Process turns a transcript into an expense draft using the caller's
// lexicon. It is a pure function: identical inputs produce identical drafts,
// there is no I/O, and malformed transcripts degrade to a fallback draft
// rather than an error. The only error condition is a caller contract
// violation (invalid lexicon or zero start date), reported as
// common.ErrInvalidInput.
func Process(transcript string, lex model.Lexicon, startDate time.Time) (model.ExpenseDraft, error) {
	if err := lex.Validate(); err != nil {
		return model.ExpenseDraft{}, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	if startDate.IsZero() {
		return model.ExpenseDraft{}, fmt.Errorf("%w: zero start date", common.ErrInvalidInput)
	}

	tokens := normalize.Tokenize(transcript)

	amount := extract.Amount(tokens)
	payment := extract.Payment(tokens)
	costCenter := extract.CostCenter(tokens, lex)
	category := extract.Category(tokens, lex)
	count := extract.InstallmentCount(tokens)

	// An expense with no amount has no economic meaning; everything else
	// can default, the amount cannot.
	if !amount.Found {
		return fallbackDraft(transcript, lex, startDate), nil
	}

	installments, err := installment.Plan(amount.Value, count.Value, startDate)
	if err != nil {
		return model.ExpenseDraft{}, err
	}

	confidence := model.ConfidencePartial
	if payment.Found && costCenter.Found && category.Found {
		confidence = model.ConfidenceHigh
	}

	return model.ExpenseDraft{
		Transcript:       transcript,
		Description:      buildDescription(transcript, tokens, amount.Span, payment, count),
		Amount:           amount.Value,
		PaymentMethod:    payment.Value,
		CostCenter:       costCenter.Value,
		Category:         category.Value,
		InstallmentCount: count.Value,
		Installments:     installments,
		Confidence:       confidence,
		Status:           model.StatusPending,
		Date:             startDate,
	}, nil
}

// buildDescription reconstructs the human-readable description from the
// residual transcript: the original-cased, original-accented tokens outside
// the amount, payment and installment spans, joined by single spaces. An
// empty residual falls back to the full transcript.
func buildDescription(
	transcript string,
	tokens []normalize.Token,
	amountSpan extract.Span,
	payment extract.Result[model.PaymentMethod],
	count extract.Result[int],
) string {
	var parts []string
	for i, tok := range tokens {
		if amountSpan.Contains(i) {
			continue
		}
		if payment.Found && payment.Span.Contains(i) {
			continue
		}
		if count.Found && count.Span.Contains(i) {
			continue
		}
		parts = append(parts, tok.Raw)
	}

	residual := strings.TrimSpace(strings.Join(parts, " "))
	if residual == "" {
		return strings.TrimSpace(transcript)
	}
	return residual
}

// fallbackDraft is the degenerate draft produced when no amount was found:
// zero amount, the raw transcript as description (or a fixed marker when the
// transcript is empty), and no installment plan. The caller is expected to
// surface it as an editable form rather than a populated expense.
func fallbackDraft(transcript string, lex model.Lexicon, startDate time.Time) model.ExpenseDraft {
	description := strings.TrimSpace(transcript)
	if description == "" {
		description = FallbackDescription
	}
	return model.ExpenseDraft{
		Transcript:       transcript,
		Description:      description,
		Amount:           decimal.Zero,
		PaymentMethod:    model.PaymentOther,
		CostCenter:       lex.DefaultCostCenter(),
		Category:         lex.DefaultCategory(),
		InstallmentCount: 1,
		Installments:     nil,
		Confidence:       model.ConfidenceFallback,
		Status:           model.StatusPending,
		Date:             startDate,
	}
}
