package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconValidate(t *testing.T) {
	tests := []struct {
		name    string
		lex     Lexicon
		wantErr bool
	}{
		{
			name: "valid",
			lex: Lexicon{
				CostCenters: []string{"Pessoal", "Empresa 2"},
				Categories:  []string{"Insumos", "Outros"},
			},
		},
		{
			name:    "empty cost centers",
			lex:     Lexicon{Categories: []string{"Outros"}},
			wantErr: true,
		},
		{
			name:    "empty categories",
			lex:     Lexicon{CostCenters: []string{"Pessoal"}},
			wantErr: true,
		},
		{
			name: "duplicate category differing only in case",
			lex: Lexicon{
				CostCenters: []string{"Pessoal"},
				Categories:  []string{"Outros", "outros"},
			},
			wantErr: true,
		},
		{
			name: "blank entry",
			lex: Lexicon{
				CostCenters: []string{"Pessoal", "  "},
				Categories:  []string{"Outros"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lex.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLexiconDefaults(t *testing.T) {
	lex := Lexicon{
		CostCenters: []string{"Pessoal", "Empresa 2"},
		Categories:  []string{"Insumos", "Outros"},
	}
	assert.Equal(t, "Pessoal", lex.DefaultCostCenter())
	assert.Equal(t, "Outros", lex.DefaultCategory())

	// Without an "Outros" entry the first category is the default.
	lex.Categories = []string{"Mercado", "Contas"}
	assert.Equal(t, "Mercado", lex.DefaultCategory())
}

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range []PaymentMethod{
		PaymentCash, PaymentCreditCard, PaymentDebitCard,
		PaymentPix, PaymentBankTransfer, PaymentBoleto, PaymentOther,
	} {
		got, err := ParsePaymentMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.NotEmpty(t, m.Display())
	}

	_, err := ParsePaymentMethod("cheque")
	assert.Error(t, err)
}
