// Package model defines the domain types shared across the extraction
// pipeline, storage and the CLI.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Confidence is a coarse indicator of how much of a draft was explicitly
// recognized versus defaulted.
type Confidence string

const (
	// ConfidenceHigh means amount, cost center, category and payment method
	// were all matched explicitly in the transcript.
	ConfidenceHigh Confidence = "high"
	// ConfidencePartial means the amount matched but at least one other field
	// fell back to its default.
	ConfidencePartial Confidence = "partial"
	// ConfidenceFallback means no amount was found; the draft is a
	// placeholder the user must fill in manually.
	ConfidenceFallback Confidence = "fallback"
)

// DraftStatus tracks whether a stored draft has been confirmed by the user.
type DraftStatus string

const (
	// StatusPending marks a draft awaiting user review.
	StatusPending DraftStatus = "pending"
	// StatusConfirmed marks a draft the user has accepted.
	StatusConfirmed DraftStatus = "confirmed"
)

// ExpenseDraft is the structured result of one extraction run. It is created
// once per pipeline invocation and never mutated by the pipeline; persistence
// and any later edits belong to the caller.
type ExpenseDraft struct {
	ID               string
	Transcript       string
	Description      string
	Amount           decimal.Decimal
	PaymentMethod    PaymentMethod
	CostCenter       string
	Category         string
	InstallmentCount int
	Installments     []Installment
	Confidence       Confidence
	Status           DraftStatus
	Date             time.Time
}

// IsFallback reports whether the draft is the degenerate no-amount variant.
func (d *ExpenseDraft) IsFallback() bool {
	return d.Confidence == ConfidenceFallback
}

// InstallmentTotal sums the installment amounts. For any non-fallback draft
// this equals Amount to the cent.
func (d *ExpenseDraft) InstallmentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, in := range d.Installments {
		total = total.Add(in.Amount)
	}
	return total
}

// Installment is one scheduled partial payment of a draft's total amount.
type Installment struct {
	Sequence int
	Amount   decimal.Decimal
	DueDate  time.Time
}
