// Package lexicon owns the canonical vocabularies used by the extraction
// pipeline: the payment-method surface-form table and the default cost
// center / category sets applied when a user has not configured their own.
package lexicon

import "github.com/gastoclaro/gastoclaro/internal/model"

// DefaultCostCenters is used when the user has no cost centers configured.
// The first entry is the designated default.
var DefaultCostCenters = []string{"Pessoal"}

// DefaultCategories is used when the user has no categories configured.
var DefaultCategories = []string{
	"Alimentação",
	"Transporte",
	"Moradia",
	"Saúde",
	"Educação",
	"Entretenimento",
	"Outros",
}

// New builds a Lexicon from the user's configured vocabularies, substituting
// the defaults for any empty sequence.
func New(costCenters, categories []string) model.Lexicon {
	if len(costCenters) == 0 {
		costCenters = DefaultCostCenters
	}
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return model.Lexicon{
		CostCenters: costCenters,
		Categories:  categories,
	}
}
