package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastoclaro/gastoclaro/internal/normalize"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantFound bool
	}{
		{
			name:      "bare number with reais",
			input:     "150 reais de insumos",
			want:      "150",
			wantFound: true,
		},
		{
			name:      "written out number",
			input:     "cento e cinquenta reais no mercado",
			want:      "150",
			wantFound: true,
		},
		{
			name:      "currency symbol prefix",
			input:     "gastei R$87,55 hoje",
			want:      "87.55",
			wantFound: true,
		},
		{
			name:      "currency symbol as separate token",
			input:     "paguei R$ 42 na feira",
			want:      "42",
			wantFound: true,
		},
		{
			name:      "decimal comma",
			input:     "87,55 reais de gasolina",
			want:      "87.55",
			wantFound: true,
		},
		{
			name:      "thousands separator",
			input:     "1.300,50 reais de aluguel",
			want:      "1300.5",
			wantFound: true,
		},
		{
			name:      "reais e centavos phrasing",
			input:     "dez reais e cinquenta centavos de pão",
			want:      "10.5",
			wantFound: true,
		},
		{
			name:      "centavos without connector",
			input:     "dez reais cinquenta centavos",
			want:      "10.5",
			wantFound: true,
		},
		{
			name:      "first amount wins",
			input:     "20 reais de pão e 300 reais de carne",
			want:      "20",
			wantFound: true,
		},
		{
			name:      "singular real",
			input:     "um real de bala",
			want:      "1",
			wantFound: true,
		},
		{
			name:      "misspelled reais still counts",
			input:     "50 reaus de lanche",
			want:      "50",
			wantFound: true,
		},
		{
			name:  "zero amount treated as not found",
			input: "zero reais de nada",
		},
		{
			name:  "number without currency marker",
			input: "comprei 3 lanches",
		},
		{
			name:  "no numeric token at all",
			input: "comprei umas coisas no mercado",
		},
		{
			name:  "empty transcript",
			input: "",
		},
		{
			name:      "zero skipped then real amount found",
			input:     "zero reais não, 30 reais",
			want:      "30",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(normalize.Tokenize(tt.input))
			if !tt.wantFound {
				assert.False(t, got.Found)
				assert.True(t, got.Value.IsZero())
				return
			}
			require.True(t, got.Found)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Value.Equal(want), "got %s, want %s", got.Value, want)
		})
	}
}

func TestAmountSpan(t *testing.T) {
	tokens := normalize.Tokenize("gastei 150 reais no mercado")
	got := Amount(tokens)
	require.True(t, got.Found)
	assert.Equal(t, Span{Start: 1, End: 3}, got.Span)

	tokens = normalize.Tokenize("dez reais e cinquenta centavos de pão")
	got = Amount(tokens)
	require.True(t, got.Found)
	// Span covers through "centavos".
	assert.Equal(t, Span{Start: 0, End: 5}, got.Span)
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"150", "150", true},
		{"87,55", "87.55", true},
		{"1.300,50", "1300.5", true},
		{"1.300", "1300", true},
		{"10.50", "10.5", true},
		{"abc", "", false},
		{"12a", "", false},
		{"", "", false},
		{"1,2,3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseNumeric(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				want, err := decimal.NewFromString(tt.want)
				require.NoError(t, err)
				assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			}
		})
	}
}
