package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

var startDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func fullLexicon() model.Lexicon {
	return model.Lexicon{
		CostCenters: []string{"Pessoal", "Empresa 2"},
		Categories:  []string{"Insumos", "Outros"},
	}
}

func TestProcessFullyRecognized(t *testing.T) {
	draft, err := Process("150 reais de insumos para Empresa 2 no crédito", fullLexicon(), startDate)
	require.NoError(t, err)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, model.PaymentCreditCard, draft.PaymentMethod)
	assert.Equal(t, "Empresa 2", draft.CostCenter)
	assert.Equal(t, "Insumos", draft.Category)
	assert.Equal(t, 1, draft.InstallmentCount)
	assert.Equal(t, model.ConfidenceHigh, draft.Confidence)
	assert.Equal(t, "de insumos para Empresa 2", draft.Description)
	require.Len(t, draft.Installments, 1)
	assert.Equal(t, startDate, draft.Installments[0].DueDate)
}

func TestProcessInstallmentPlan(t *testing.T) {
	lex := model.Lexicon{
		CostCenters: []string{"Pessoal"},
		Categories:  []string{"Outros"},
	}
	draft, err := Process("cem reais em 4 vezes no débito", lex, startDate)
	require.NoError(t, err)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, model.PaymentDebitCard, draft.PaymentMethod)
	assert.Equal(t, 4, draft.InstallmentCount)
	require.Len(t, draft.Installments, 4)

	for i, in := range draft.Installments {
		assert.True(t, in.Amount.Equal(decimal.RequireFromString("25.00")))
		assert.Equal(t, startDate.AddDate(0, 0, 30*i), in.DueDate)
	}
	// Cost center and category both defaulted.
	assert.Equal(t, model.ConfidencePartial, draft.Confidence)
	// Everything was consumed by matched spans, so the description falls
	// back to the full transcript.
	assert.Equal(t, "cem reais em 4 vezes no débito", draft.Description)
}

func TestProcessEmptyTranscript(t *testing.T) {
	draft, err := Process("", fullLexicon(), startDate)
	require.NoError(t, err)

	assert.True(t, draft.IsFallback())
	assert.True(t, draft.Amount.IsZero())
	assert.Equal(t, FallbackDescription, draft.Description)
	assert.Equal(t, 1, draft.InstallmentCount)
	assert.Empty(t, draft.Installments)
	assert.Equal(t, model.PaymentOther, draft.PaymentMethod)
	assert.Equal(t, "Pessoal", draft.CostCenter)
	assert.Equal(t, "Outros", draft.Category)
}

func TestProcessNoAmountFallback(t *testing.T) {
	draft, err := Process("comprei umas coisas no mercado", fullLexicon(), startDate)
	require.NoError(t, err)

	assert.Equal(t, model.ConfidenceFallback, draft.Confidence)
	assert.True(t, draft.Amount.IsZero())
	assert.Equal(t, "comprei umas coisas no mercado", draft.Description)
	assert.Empty(t, draft.Installments)
}

func TestProcessRemainderAbsorption(t *testing.T) {
	lex := model.Lexicon{
		CostCenters: []string{"Pessoal"},
		Categories:  []string{"Outros"},
	}

	draft, err := Process("trinta e três reais em 3 vezes", lex, startDate)
	require.NoError(t, err)
	require.Len(t, draft.Installments, 3)
	for _, in := range draft.Installments {
		assert.True(t, in.Amount.Equal(decimal.RequireFromString("11.00")))
	}

	// 34/3 floors to 11.33 per installment; the last absorbs the 1-cent
	// remainder so the schedule still sums to the total.
	draft, err = Process("34 reais em 3 vezes", lex, startDate)
	require.NoError(t, err)
	require.Len(t, draft.Installments, 3)
	assert.True(t, draft.Installments[0].Amount.Equal(decimal.RequireFromString("11.33")))
	assert.True(t, draft.Installments[1].Amount.Equal(decimal.RequireFromString("11.33")))
	assert.True(t, draft.Installments[2].Amount.Equal(decimal.RequireFromString("11.34")))
	assert.True(t, draft.InstallmentTotal().Equal(draft.Amount))
}

func TestProcessPartialConfidenceOnDefaults(t *testing.T) {
	draft, err := Process("gastei 75 reais no crédito", fullLexicon(), startDate)
	require.NoError(t, err)

	// Payment matched but cost center and category defaulted.
	assert.Equal(t, model.ConfidencePartial, draft.Confidence)
	assert.Equal(t, "Pessoal", draft.CostCenter)
	assert.Equal(t, "Outros", draft.Category)
}

func TestProcessIdempotent(t *testing.T) {
	transcript := "150 reais de insumos para Empresa 2 no crédito em 3 vezes"

	first, err := Process(transcript, fullLexicon(), startDate)
	require.NoError(t, err)
	second, err := Process(transcript, fullLexicon(), startDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessContractViolations(t *testing.T) {
	tests := []struct {
		name  string
		lex   model.Lexicon
		start time.Time
	}{
		{
			name:  "empty cost centers",
			lex:   model.Lexicon{Categories: []string{"Outros"}},
			start: startDate,
		},
		{
			name:  "empty categories",
			lex:   model.Lexicon{CostCenters: []string{"Pessoal"}},
			start: startDate,
		},
		{
			name: "duplicate cost centers",
			lex: model.Lexicon{
				CostCenters: []string{"Pessoal", "pessoal"},
				Categories:  []string{"Outros"},
			},
			start: startDate,
		},
		{
			name:  "zero start date",
			lex:   fullLexicon(),
			start: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Process("50 reais de pão", tt.lex, tt.start)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestProcessDescriptionKeepsOriginalCasing(t *testing.T) {
	draft, err := Process("25 reais de Açaí no Pix", fullLexicon(), startDate)
	require.NoError(t, err)
	assert.Equal(t, "de Açaí", draft.Description)
}
