package installment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastoclaro/gastoclaro/internal/common"
)

var planStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestPlanEvenSplit(t *testing.T) {
	installments, err := Plan(decimal.NewFromInt(100), 4, planStart)
	require.NoError(t, err)
	require.Len(t, installments, 4)

	for i, in := range installments {
		assert.Equal(t, i+1, in.Sequence)
		assert.True(t, in.Amount.Equal(decimal.RequireFromString("25.00")))
		assert.Equal(t, planStart.AddDate(0, 0, 30*i), in.DueDate)
	}
}

func TestPlanExactDivision(t *testing.T) {
	installments, err := Plan(decimal.NewFromInt(33), 3, planStart)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	for _, in := range installments {
		assert.True(t, in.Amount.Equal(decimal.RequireFromString("11.00")))
	}
}

func TestPlanLastAbsorbsRemainder(t *testing.T) {
	installments, err := Plan(decimal.NewFromInt(34), 3, planStart)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	assert.True(t, installments[0].Amount.Equal(decimal.RequireFromString("11.33")))
	assert.True(t, installments[1].Amount.Equal(decimal.RequireFromString("11.33")))
	assert.True(t, installments[2].Amount.Equal(decimal.RequireFromString("11.34")))

	sum := decimal.Zero
	for _, in := range installments {
		sum = sum.Add(in.Amount)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(34)))
}

func TestPlanSumInvariant(t *testing.T) {
	amounts := []string{"0.01", "0.03", "1.00", "34.00", "99.99", "150.00", "1300.50", "7777.77"}

	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		for count := 1; count <= 24; count++ {
			installments, err := Plan(amount, count, planStart)
			require.NoError(t, err)
			require.Len(t, installments, count)

			sum := decimal.Zero
			for _, in := range installments {
				sum = sum.Add(in.Amount)
			}
			assert.True(t, sum.Equal(amount),
				"amount %s in %d installments sums to %s", amount, count, sum)
		}
	}
}

func TestPlanSingleInstallmentDueImmediately(t *testing.T) {
	installments, err := Plan(decimal.NewFromInt(50), 1, planStart)
	require.NoError(t, err)
	require.Len(t, installments, 1)
	assert.Equal(t, planStart, installments[0].DueDate)
	assert.Equal(t, 1, installments[0].Sequence)
}

func TestPlanDueDatesStrictlyIncreasing(t *testing.T) {
	installments, err := Plan(decimal.NewFromInt(240), 8, planStart)
	require.NoError(t, err)

	for i := 1; i < len(installments); i++ {
		assert.True(t, installments[i].DueDate.After(installments[i-1].DueDate))
		assert.Equal(t, 30*24*time.Hour, installments[i].DueDate.Sub(installments[i-1].DueDate))
	}
}

func TestPlanContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		count  int
		start  time.Time
	}{
		{"zero count", decimal.NewFromInt(10), 0, planStart},
		{"negative count", decimal.NewFromInt(10), -2, planStart},
		{"count above maximum", decimal.NewFromInt(10), 25, planStart},
		{"negative amount", decimal.NewFromInt(-10), 2, planStart},
		{"zero start date", decimal.NewFromInt(10), 2, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(tt.amount, tt.count, tt.start)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}
