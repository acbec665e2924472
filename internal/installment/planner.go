// Package installment generates installment schedules for an expense total.
package installment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/extract"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

// cadenceDays is the fixed gap between due dates. The source system used a
// calendar-naive 30-day cadence rather than true month boundaries; that
// behavior is externally observable, so it is preserved.
const cadenceDays = 30

// Plan splits amount into count installments due every 30 days from start.
// Every installment gets the floor of the even split; the last one absorbs
// the rounding remainder so the amounts always sum exactly to the total.
func Plan(amount decimal.Decimal, count int, start time.Time) ([]model.Installment, error) {
	if count < 1 || count > extract.MaxInstallments {
		return nil, fmt.Errorf("%w: installment count %d outside [1, %d]",
			common.ErrInvalidInput, count, extract.MaxInstallments)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative amount %s", common.ErrInvalidInput, amount)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: zero start date", common.ErrInvalidInput)
	}

	// Integer cents arithmetic keeps the split exact.
	totalCents := amount.Round(2).Shift(2).IntPart()
	baseCents := totalCents / int64(count)
	lastCents := totalCents - baseCents*int64(count-1)

	installments := make([]model.Installment, count)
	for k := 0; k < count; k++ {
		cents := baseCents
		if k == count-1 {
			cents = lastCents
		}
		installments[k] = model.Installment{
			Sequence: k + 1,
			Amount:   decimal.New(cents, -2),
			DueDate:  start.AddDate(0, 0, cadenceDays*k),
		}
	}
	return installments, nil
}
