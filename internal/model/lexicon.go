package model

import (
	"fmt"
	"strings"
)

// Lexicon carries the user's configured vocabularies for one extraction call.
// It is supplied by value, read-only, and never read from ambient state.
type Lexicon struct {
	CostCenters []string
	Categories  []string
}

// Validate checks the caller contract: both sequences must be non-empty and
// free of duplicates. A violation is a programming error in the caller, not
// an extraction miss.
func (l Lexicon) Validate() error {
	if err := validateVocabulary("cost centers", l.CostCenters); err != nil {
		return err
	}
	return validateVocabulary("categories", l.Categories)
}

func validateVocabulary(name string, entries []string) error {
	if len(entries) == 0 {
		return fmt.Errorf("lexicon %s must not be empty", name)
	}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		trimmed := strings.TrimSpace(e)
		if trimmed == "" {
			return fmt.Errorf("lexicon %s contains a blank entry", name)
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("lexicon %s contains duplicate entry %q", name, e)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// DefaultCostCenter is the designated fallback cost center: the first
// configured entry, conventionally "Pessoal".
func (l Lexicon) DefaultCostCenter() string {
	if len(l.CostCenters) == 0 {
		return ""
	}
	return l.CostCenters[0]
}

// DefaultCategory is the designated fallback category: the entry named
// "Outros" when configured, otherwise the first entry.
func (l Lexicon) DefaultCategory() string {
	for _, c := range l.Categories {
		if strings.EqualFold(strings.TrimSpace(c), "outros") {
			return c
		}
	}
	if len(l.Categories) == 0 {
		return ""
	}
	return l.Categories[0]
}
