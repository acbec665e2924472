package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: nil context", common.ErrInvalidInput)
	}
	return ctx.Err()
}

func validateString(s, field string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", common.ErrInvalidInput, field)
	}
	return nil
}

// validateDraft rejects drafts that violate the pipeline's own invariants so
// a buggy caller cannot persist an inconsistent record.
func validateDraft(draft *model.ExpenseDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: nil draft", common.ErrInvalidInput)
	}
	if draft.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", common.ErrInvalidInput, draft.Amount)
	}
	if !draft.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", common.ErrInvalidInput, draft.PaymentMethod)
	}
	if draft.InstallmentCount < 1 {
		return fmt.Errorf("%w: installment count %d", common.ErrInvalidInput, draft.InstallmentCount)
	}
	if draft.Date.IsZero() {
		return fmt.Errorf("%w: zero draft date", common.ErrInvalidInput)
	}

	// The sum invariant holds for every draft that carries a plan.
	if len(draft.Installments) > 0 && !draft.InstallmentTotal().Equal(draft.Amount) {
		return fmt.Errorf("%w: installments sum to %s, expected %s",
			common.ErrInvalidInput, draft.InstallmentTotal(), draft.Amount)
	}
	return nil
}
